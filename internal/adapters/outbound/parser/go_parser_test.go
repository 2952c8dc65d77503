package parser_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archlint/archlint/internal/adapters/outbound/parser"
	"github.com/archlint/archlint/internal/domain"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseFile_TypesAndBases(t *testing.T) {
	path := writeFile(t, "ports.go", `package sample

import "io"

type NotifierPort interface {
	io.Closer
	Notify(id string) error
}

type Repository struct {
	BaseRepository
	name string
}

type Alias = NotifierPort
`)

	p := parser.New()
	parsed, err := p.ParseFile(path)
	require.NoError(t, err)

	assert.Equal(t, "sample", parsed.Package)
	require.Len(t, parsed.Types, 3)

	notifier := parsed.Types[0]
	assert.Equal(t, "NotifierPort", notifier.Name)
	assert.Equal(t, domain.TypeKindInterface, notifier.Kind)
	assert.Equal(t, []string{"io.Closer"}, notifier.Bases)

	repo := parsed.Types[1]
	assert.Equal(t, domain.TypeKindStruct, repo.Kind)
	assert.Equal(t, []string{"BaseRepository"}, repo.Bases)

	alias := parsed.Types[2]
	assert.Equal(t, domain.TypeKindAlias, alias.Kind)
	assert.Equal(t, []string{"NotifierPort"}, alias.Bases)
}

func TestParseFile_GenericBaseStripsSubscript(t *testing.T) {
	path := writeFile(t, "generic.go", `package sample

type Store[T any] interface{ Get(id string) T }

type UserStorePort interface {
	Store[string]
}
`)

	p := parser.New()
	parsed, err := p.ParseFile(path)
	require.NoError(t, err)

	require.Len(t, parsed.Types, 2)
	assert.Equal(t, []string{"Store"}, parsed.Types[1].Bases)
}

func TestParseFile_Calls(t *testing.T) {
	path := writeFile(t, "out.go", `package sample

import (
	"fmt"
	"log"
	"os"
)

func Emit() {
	fmt.Println("hello")
	logger := log.New(os.Stderr, "", 0)
	logger.Println("done")
	println("raw")
}
`)

	p := parser.New()
	parsed, err := p.ParseFile(path)
	require.NoError(t, err)

	var names []string
	for _, call := range parsed.Calls {
		if call.Receiver != "" {
			names = append(names, call.Receiver+"."+call.Name)
		} else {
			names = append(names, call.Name)
		}
	}
	assert.Contains(t, names, "fmt.Println")
	assert.Contains(t, names, "log.New")
	assert.Contains(t, names, "logger.Println")
	assert.Contains(t, names, "println")
}

func TestParseFile_LineNumbers(t *testing.T) {
	path := writeFile(t, "lines.go", `package sample

type FirstPort interface{}

type SecondPort interface{}
`)

	p := parser.New()
	parsed, err := p.ParseFile(path)
	require.NoError(t, err)

	require.Len(t, parsed.Types, 2)
	assert.Equal(t, 3, parsed.Types[0].Line)
	assert.Equal(t, 5, parsed.Types[1].Line)
}

func TestParseFile_SyntaxErrorReturnsError(t *testing.T) {
	path := writeFile(t, "broken.go", "package sample\n\nfunc {")

	p := parser.New()
	_, err := p.ParseFile(path)
	assert.Error(t, err)
}

func TestParseFile_MissingFileReturnsError(t *testing.T) {
	p := parser.New()
	_, err := p.ParseFile(filepath.Join(t.TempDir(), "nope.go"))
	assert.Error(t, err)
}
