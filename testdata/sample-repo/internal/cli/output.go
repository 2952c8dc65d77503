package cli

import (
	"fmt"
	"log"
	"os"
)

func PrintSummary(lines []string) {
	logger := log.New(os.Stderr, "sample: ", log.LstdFlags)
	for _, line := range lines {
		fmt.Println(line)
	}
	logger.Println("done")
}
