package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"smartpid/internal/domain/geometry"
	"smartpid/internal/domain/matching"
	"smartpid/internal/domain/mockdata"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestClassifyCommand(t *testing.T) {
	out, err := run(t, "classify", "P-101", "FOO-1")
	require.NoError(t, err)

	var results []classification
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	assert.True(t, results[0].IsMandatory)
	assert.False(t, results[1].IsMandatory)

	out, err = run(t, "classify", "--pattern", `^FOO-\d+`, "FOO-1")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	assert.True(t, results[0].IsMandatory)

	_, err = run(t, "classify", "--pattern", "(", "P-101")
	assert.Error(t, err)
}

func TestMapCommand(t *testing.T) {
	out, err := run(t, "map",
		"--x", "0.1", "--y", "0.2", "--width", "0.1", "--height", "0.05",
		"--doc-width", "1000", "--doc-height", "500", "--zoom", "2")
	require.NoError(t, err)

	var coords geometry.ViewerCoordinates
	require.NoError(t, json.Unmarshal([]byte(out), &coords))
	assert.InDelta(t, 200, coords.X, 1e-9)
	assert.InDelta(t, 200, coords.Y, 1e-9)
	assert.InDelta(t, 200, coords.Width, 1e-9)
	assert.InDelta(t, 50, coords.Height, 1e-9)
	assert.InDelta(t, 412, coords.CheckboxX, 1e-9)
	assert.InDelta(t, 225, coords.CheckboxY, 1e-9)
}

func TestMatchCommand(t *testing.T) {
	dir := t.TempDir()
	itemsPath := filepath.Join(dir, "items.json")
	detectionPath := filepath.Join(dir, "detection.json")

	items := `[{"itemId":"1","itemName":"Pump","matchText":"P-101","isMandatory":true},
	           {"itemId":"2","itemName":"Valve","matchText":"V-9","isMandatory":false}]`
	detection := `{"items":[{"text":"P-101","confidence":97,"boundingBox":{"x":0.1,"y":0.1,"width":0.1,"height":0.02}}]}`
	require.NoError(t, os.WriteFile(itemsPath, []byte(items), 0o644))
	require.NoError(t, os.WriteFile(detectionPath, []byte(detection), 0o644))

	out, err := run(t, "match", "--items", itemsPath, "--detection", detectionPath)
	require.NoError(t, err)

	var result matching.MatchResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Matched, 1)
	assert.Equal(t, "1", result.Matched[0].ItemID)
	assert.Equal(t, 97.0, result.Matched[0].Confidence)
	require.Len(t, result.Unmatched, 1)
	assert.Equal(t, "2", result.Unmatched[0].ItemID)

	// Без распознавания все позиции ненайденные
	out, err = run(t, "match", "--items", itemsPath)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Empty(t, result.Matched)
	assert.Len(t, result.Unmatched, 2)

	_, err = run(t, "match")
	assert.Error(t, err)
}

func TestImportCommand(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "Equipment"))
	rows := [][]any{
		{"Item ID", "Item Name", "Tag"},
		{"1", "Feed pump", "P-101"},
		{"2", "Sample point", "SP-4"},
	}
	for i, row := range rows {
		addr, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Equipment", addr, &row))
	}
	path := filepath.Join(t.TempDir(), "items.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	out, err := run(t, "import-xlsx", path)
	require.NoError(t, err)

	var sheets []mockdata.Sheet
	require.NoError(t, json.Unmarshal([]byte(out), &sheets))
	require.Len(t, sheets, 1)
	assert.Equal(t, "Equipment", sheets[0].Name)
	require.Len(t, sheets[0].Items, 2)
	assert.True(t, sheets[0].Items[0].IsMandatory)
	assert.False(t, sheets[0].Items[1].IsMandatory)

	_, err = run(t, "import-xlsx", filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.Error(t, err)
}
