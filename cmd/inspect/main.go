// Command inspect dumps the local session store in read-only mode.
// Handy when a resume does not land in the room you expected.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"office-lab/domain"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
)

func main() {
	dbPath := flag.String("db", "/tmp/office-lab", "Path to badger DB")
	prefix := flag.String("prefix", "session:", "Prefix to scan")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Type", "Value"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			key := string(item.Key())

			err := item.Value(func(v []byte) error {
				table.Append([]string{key, describe(key, v), render(key, v)})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	table.Render()
}

func describe(key string, _ []byte) string {
	switch {
	case strings.HasSuffix(key, ":profile"):
		return "PROFILE"
	case strings.HasSuffix(key, ":last-room"):
		return "LAST ROOM"
	default:
		return "RAW"
	}
}

func render(key string, v []byte) string {
	if strings.HasSuffix(key, ":profile") {
		var profile domain.Profile
		if err := json.Unmarshal(v, &profile); err != nil {
			// Keep scanning even if one entry is garbage.
			return fmt.Sprintf("unreadable: %v", err)
		}
		return fmt.Sprintf("%s (%s)", profile.Name, profile.UserID)
	}
	return string(v)
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)

	return badger.Open(opts)
}
