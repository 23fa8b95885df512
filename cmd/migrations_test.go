package cmd

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// repository inserts go through MutableColumns, which excludes the uuid
// primary key, so every id column must be generated by the schema itself
func TestMigrations_primaryKeysHaveDefaults(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("..", "migrations", "*.up.sql"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	pkColumn := regexp.MustCompile(`\w+_id UUID PRIMARY KEY`)
	found := 0
	for _, file := range files {
		contents, err := os.ReadFile(file)
		require.NoError(t, err)

		for _, line := range strings.Split(string(contents), "\n") {
			if pkColumn.MatchString(line) {
				found++
				require.Contains(t, line, "DEFAULT gen_random_uuid()",
					"primary key without a generated default in %s", filepath.Base(file))
			}
		}
	}
	require.Equal(t, 5, found)
}
