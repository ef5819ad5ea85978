package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	cost := flag.Int("cost", bcrypt.DefaultCost, "bcrypt cost factor")
	outputJSON := flag.Bool("json", false, "Output as JSON")
	flag.Parse()

	// Secret comes from the first argument, or stdin so it stays out of shell history
	secret := flag.Arg(0)
	if secret == "" {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintf(os.Stderr, "Error reading secret: %v\n", err)
			os.Exit(1)
		}
		secret = strings.TrimRight(line, "\r\n")
	}
	if secret == "" {
		fmt.Fprintln(os.Stderr, "Usage: hash-secret [-cost N] [-json] <secret>")
		os.Exit(2)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), *cost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error hashing secret: %v\n", err)
		os.Exit(1)
	}

	if *outputJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(map[string]any{
			"pass_hash":        string(hash),
			"pass_hash_bcrypt": true,
			"cost":             *cost,
		})
		return
	}

	fmt.Println("Secret Hashed")
	fmt.Println("=============")
	fmt.Println()
	fmt.Printf("PASS_HASH=%s\n", hash)
	fmt.Println("PASS_HASH_BCRYPT=true")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  curl -X DELETE 'http://localhost:3000/quiz/<id>?pass=<secret>'")
}
