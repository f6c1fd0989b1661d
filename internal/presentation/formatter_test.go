package presentation

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/zjrosen/reqdesk/internal/catalog"
	"github.com/zjrosen/reqdesk/internal/namespace"
)

var anchor = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func testPage(t *testing.T, n, page int) PageDTO {
	t.Helper()
	records := catalog.NewGenerator(1, anchor, catalog.WithCount(n)).Generate("default")
	return FromPage("default", catalog.Paginate(records, page, catalog.DefaultPageSize))
}

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

func TestValidateFormat(t *testing.T) {
	for _, f := range []string{FormatTable, FormatJSON, FormatYAML} {
		require.NoError(t, ValidateFormat(f))
	}
	require.ErrorContains(t, ValidateFormat("csv"), `"csv"`)
}

func TestFormatPage_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(&buf, FormatTable).FormatPage(testPage(t, 25, 3)))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.True(t, strings.HasPrefix(lines[0], "ID"))
	require.Contains(t, lines[0], "STATUS")
	require.True(t, strings.HasPrefix(lines[1], "default-req-021"))
	require.Contains(t, buf.String(), "Page 3 of 3 (25 requests)")

	// Columns line up: STATUS starts at the same offset in every row.
	col := strings.Index(lines[0], "STATUS")
	for _, l := range lines[1:6] {
		require.Equal(t, "  ", l[col-2:col])
	}
}

func TestFormatPage_TableEmpty(t *testing.T) {
	var buf bytes.Buffer
	p := FromPage("development", catalog.Paginate([]catalog.Record(nil), 1, 10))
	require.NoError(t, NewFormatter(&buf, FormatTable).FormatPage(p))
	require.Equal(t, "No requests in namespace development.\n", buf.String())
}

func TestFormatPage_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(&buf, FormatJSON).FormatPage(testPage(t, 25, 1)))

	var got PageDTO
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, 1, got.Page)
	require.Equal(t, 3, got.TotalPages)
	require.Equal(t, 25, got.Total)
	require.Len(t, got.Requests, 10)
	require.Equal(t, "default-req-001", got.Requests[0].ID)
	require.Equal(t, anchor, got.Requests[0].CreatedAt)
}

func TestFormatPage_JSONEmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	p := FromPage("development", catalog.Paginate([]catalog.Record(nil), 1, 10))
	require.NoError(t, NewFormatter(&buf, FormatJSON).FormatPage(p))
	require.Contains(t, buf.String(), `"requests": []`)
	require.Contains(t, buf.String(), `"total_pages": 0`)
}

func TestFormatPage_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(&buf, FormatYAML).FormatPage(testPage(t, 5, 1)))

	var got PageDTO
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, "default", got.Namespace)
	require.Len(t, got.Requests, 5)
	require.Contains(t, buf.String(), "total_pages: 1")
}

func TestFormatNamespaces(t *testing.T) {
	list := FromNamespaces(namespace.NewRegistry().List(), "staging")

	var buf bytes.Buffer
	require.NoError(t, NewFormatter(&buf, FormatTable).FormatNamespaces(list))
	out := buf.String()
	require.Contains(t, out, "production")
	require.Contains(t, out, "Development")

	for _, l := range strings.Split(out, "\n") {
		if strings.HasPrefix(l, "staging") {
			require.True(t, strings.HasSuffix(l, "*"))
		}
		if strings.HasPrefix(l, "default") {
			require.False(t, strings.HasSuffix(l, "*"))
		}
	}

	buf.Reset()
	require.NoError(t, NewFormatter(&buf, FormatJSON).FormatNamespaces(list))
	var got []NamespaceDTO
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 4)
	require.True(t, got[2].Default)
}
