package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"hotelreservation/internal/modules/auth"
)

// Prints a bcrypt hash for OPERATOR_PASSWORD_HASH. The password is read from
// -password or, when that is empty, from the first line of stdin.
func main() {
	password := flag.String("password", "", "operator password to hash")
	flag.Parse()

	pw := *password
	if pw == "" {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			log.Fatalf("read password: %v", err)
		}
		pw = strings.TrimRight(line, "\r\n")
	}
	if pw == "" {
		log.Fatal("password is required")
	}

	hash, err := auth.HashPassword(pw)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}
	fmt.Println(hash)
}
