// @title Cat Tags API
// @version 1.0
// @description Save cat tags validated against cataas and fetch random cat pictures for them.
// @BasePath /

package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
