// Command actorgraph answers path, spanning forest and collaboration queries
// over a TSV catalog of movie credits.
package main

import "github.com/katalvlaran/actorgraph/internal/cli"

func main() {
	cli.Execute()
}
