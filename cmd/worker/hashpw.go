package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/apexforge/studio-backend/internal/auth/service"
)

// runHashPassword prints a bcrypt hash for ADMIN_PASSWORD_HASH. The password
// is taken from the first argument or, when absent, the first line of stdin.
func runHashPassword(args []string) error {
	var password string
	if len(args) > 0 {
		password = args[0]
	} else {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("read password: %w", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}
	if password == "" {
		return errors.New("empty password")
	}

	hash, err := service.HashPassword(password)
	if err != nil {
		return err
	}
	fmt.Println(hash)
	return nil
}
