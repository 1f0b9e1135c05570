// atlas 輸出模型對應的資料表 DDL，供 atlas migrate 使用
//
//	atlas migrate diff --env gorm
package main

import (
	"fmt"
	"io"
	"os"
	"slices"

	"ariga.io/atlas-provider-gorm/gormschema"
	"github.com/spf13/pflag"

	"gallery/models"
)

var dialects = []string{"postgres", "mysql", "sqlite"}

func parseDialect(args []string) (string, error) {
	flags := pflag.NewFlagSet("atlas", pflag.ContinueOnError)
	dialect := flags.String("dialect", "postgres", "postgres, mysql or sqlite")
	if err := flags.Parse(args); err != nil {
		return "", err
	}
	if !slices.Contains(dialects, *dialect) {
		return "", fmt.Errorf("unsupported dialect %q", *dialect)
	}
	return *dialect, nil
}

func main() {
	dialect, err := parseDialect(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	stmts, err := gormschema.New(dialect).Load(models.All()...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load gorm schema: %v\n", err)
		os.Exit(1)
	}
	io.WriteString(os.Stdout, stmts)
}
