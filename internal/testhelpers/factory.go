package testhelpers

import (
	"fmt"

	g "github.com/onsi/gomega"
	"gorm.io/gorm"
)

// CleanupDB truncates the notes tables between specs.
func CleanupDB(db *gorm.DB) {
	for _, table := range []string{"note_items", "notes"} {
		query := fmt.Sprintf("TRUNCATE TABLE \"%s\" RESTART IDENTITY CASCADE", table)
		err := db.Exec(query).Error
		g.Expect(err).NotTo(g.HaveOccurred(), "Failed to truncate table: "+table)
	}
}
