package data

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCSVFile(t *testing.T) {
	table, err := LoadCSVFile("testdata/gapminder_gdp_americas.csv", DefaultLoadOptions())
	require.NoError(t, err)

	assert.Equal(t, "country", table.IndexName)
	assert.Equal(t, []string{"Argentina", "Canada", "Mexico", "United States"}, table.Index())
	assert.Equal(t, []string{"gdpPercap_1952", "gdpPercap_1957", "gdpPercap_1962"}, table.Columns())

	row, err := table.Row("Canada")
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{11367.16112, 12489.95006, 13462.48555}, row, 1e-6)
}

func TestLoadCSVDelimiter(t *testing.T) {
	input := "country;gdpPercap_2002;gdpPercap_2007\nPeru;5909.020073;7408.905561\n"

	opts := DefaultLoadOptions()
	opts.Delimiter = ';'
	table, err := LoadCSV(strings.NewReader(input), opts)
	require.NoError(t, err)

	row, err := table.Row("Peru")
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{5909.020073, 7408.905561}, row, 1e-6)
}

func TestLoadCSVMissingIndex(t *testing.T) {
	input := "name,gdpPercap_2002\nPeru,1\n"

	_, err := LoadCSV(strings.NewReader(input), DefaultLoadOptions())
	assert.ErrorContains(t, err, `index column "country" not found`)
}

func TestLoadCSVNonNumericColumn(t *testing.T) {
	input := "continent,country,gdpPercap_2002\nAmericas,Peru,1\n"

	opts := DefaultLoadOptions()
	opts.Drop = nil
	_, err := LoadCSV(strings.NewReader(input), opts)
	assert.ErrorContains(t, err, `column "continent" is not numeric`)
}

func TestLoadCSVRequiresIndex(t *testing.T) {
	_, err := LoadCSV(strings.NewReader("a,b\n1,2\n"), LoadOptions{})
	assert.Error(t, err)
}
