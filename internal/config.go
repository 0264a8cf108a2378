package internal

import "time"

type Config struct {
	DirectoryURL     string        `env:"DIRECTORY_URL,required=true"`
	ChannelURL       string        `env:"CHANNEL_URL,required=true"`
	BadgerFilepath   string        `env:"BADGER_FILEPATH,required=true"`
	LogLevel         string        `env:"LOG_LEVEL,required=true"`
	DirectoryTimeout time.Duration `env:"DIRECTORY_TIMEOUT,default=10s"`
	ActivityCap      int           `env:"ACTIVITY_CAP,default=50"`
	RenderInterval   time.Duration `env:"RENDER_INTERVAL,default=2s"`
	Colours          bool          `env:"COLOURS,default=true"`
}
