package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/durangezer/portfolio-api/internal/auth"
	pkgauth "github.com/durangezer/portfolio-api/pkg/auth"
	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/term"
)

// admintool provisions the single admin account: it produces the bcrypt
// hash for ADMIN_PASSWORD_HASH and, optionally, a TOTP secret for
// ADMIN_TOTP_SECRET together with a QR code for the authenticator app.
func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "hash-password":
		if err := hashPassword(); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
	case "totp":
		if err := generateTOTP(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage:
  admintool hash-password                 read a password from the terminal and print its bcrypt hash
  admintool totp [-issuer X] [-account Y] [-qr file.png]
                                          generate a TOTP secret and provisioning QR code`)
}

func hashPassword() error {
	fmt.Fprint(os.Stderr, "Password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	hash, err := pkgauth.HashPassword(string(password))
	if err != nil {
		return err
	}

	fmt.Println(hash)
	return nil
}

func generateTOTP(args []string) error {
	fs := flag.NewFlagSet("totp", flag.ExitOnError)
	issuer := fs.String("issuer", "portfolio-api", "issuer shown in the authenticator app")
	account := fs.String("account", "admin", "account name shown in the authenticator app")
	qrFile := fs.String("qr", "", "write the provisioning QR code to this PNG file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	secret, url, err := auth.GenerateSecret(*issuer, *account)
	if err != nil {
		return err
	}

	fmt.Println("ADMIN_TOTP_SECRET=" + secret)
	fmt.Println("provisioning URL: " + url)

	if *qrFile != "" {
		qr, err := qrcode.New(url, qrcode.Highest)
		if err != nil {
			return fmt.Errorf("failed to create QR code: %w", err)
		}
		png, err := qr.PNG(200)
		if err != nil {
			return fmt.Errorf("failed to encode QR code: %w", err)
		}
		if err := os.WriteFile(*qrFile, png, 0o600); err != nil {
			return fmt.Errorf("failed to write QR code: %w", err)
		}
		fmt.Println("QR code written to " + *qrFile)
	}

	return nil
}
