package main

import (
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/exec"
	"runtime"
	"time"

	ticktick "github.com/CarterT27/ticktick-cli"
)

func runAuth(args []string) error {
	if len(args) < 1 {
		return errors.New("usage: tt auth <login|logout|status>")
	}
	switch args[0] {
	case "login":
		return cmdAuthLogin()
	case "logout":
		return cmdAuthLogout()
	case "status":
		return cmdAuthStatus()
	default:
		return fmt.Errorf("unknown auth command %q", args[0])
	}
}

func cmdAuthLogin() error {
	clientID := os.Getenv("TICKTICK_CLIENT_ID")
	if clientID == "" {
		return errors.New("missing TICKTICK_CLIENT_ID")
	}
	clientSecret := os.Getenv("TICKTICK_CLIENT_SECRET")
	if clientSecret == "" {
		return errors.New("missing TICKTICK_CLIENT_SECRET")
	}
	redirectURI := os.Getenv("TICKTICK_REDIRECT_URI")
	if redirectURI == "" {
		redirectURI = "http://localhost:8080/callback"
	}

	fmt.Println("TickTick CLI Authentication")
	fmt.Println("=========================")
	fmt.Println()

	flow := ticktick.NewOAuthFlow(clientID, clientSecret, redirectURI)
	authURL, state, verifier, err := flow.AuthURL()
	if err != nil {
		return err
	}

	fmt.Println("Opening browser for authorization...")
	if err := openBrowser(authURL); err != nil {
		fmt.Println("Open this URL in your browser:")
		fmt.Println(authURL)
	}

	code, err := waitForCode(state)
	if err != nil {
		return err
	}

	token, err := flow.ExchangeCode(code, verifier)
	if err != nil {
		return err
	}

	path, err := ticktick.ConfigPath()
	if err != nil {
		return err
	}
	config := &ticktick.Config{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresAt:    token.ExpiresAt,
	}
	if err := ticktick.SaveConfig(path, config); err != nil {
		return err
	}

	fmt.Println("Successfully authenticated!")
	fmt.Println("Credentials stored in", path)
	return nil
}

// waitForCode runs a one-shot callback listener on 127.0.0.1:8080 and returns the authorization code
// once the browser redirects back. The state parameter must echo the nonce embedded in the auth URL.
func waitForCode(state string) (string, error) {
	type callback struct {
		code  string
		state string
	}
	results := make(chan callback, 1)

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "Authentication complete. You can close this window.")
		select {
		case results <- callback{code: r.URL.Query().Get("code"), state: r.URL.Query().Get("state")}:
		default:
		}
	})

	listener, err := net.Listen("tcp", "127.0.0.1:8080")
	if err != nil {
		return "", fmt.Errorf("start callback server: %w", err)
	}
	server := &http.Server{Handler: mux}
	go func() { _ = server.Serve(listener) }()
	defer func() { _ = server.Close() }()

	select {
	case cb := <-results:
		if cb.state == "" {
			return "", errors.New("missing state parameter")
		}
		if cb.state != state {
			return "", errors.New("invalid oauth state")
		}
		if cb.code == "" {
			return "", errors.New("missing authorization code")
		}
		return cb.code, nil
	case <-time.After(2 * time.Minute):
		return "", errors.New("timed out waiting for oauth callback")
	}
}

func openBrowser(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	return cmd.Start()
}

func cmdAuthLogout() error {
	path, err := ticktick.ConfigPath()
	if err != nil {
		return err
	}
	if err := ticktick.ClearConfig(path); err != nil {
		return err
	}
	fmt.Println("Successfully logged out.")
	return nil
}

func cmdAuthStatus() error {
	path, err := ticktick.ConfigPath()
	if err != nil {
		return err
	}
	config, err := ticktick.LoadConfig(path)
	if err != nil {
		return err
	}
	if config == nil {
		fmt.Println("Status: Not authenticated")
		fmt.Println("Run 'tt auth login' to authenticate.")
		return nil
	}

	fmt.Println("Status: Authenticated")
	if token := config.AccessToken; len(token) >= 16 {
		fmt.Printf("Access Token: %s...%s\n", token[:8], token[len(token)-8:])
	}
	remaining := config.ExpiresAt - time.Now().Unix()
	if remaining > 0 {
		fmt.Printf("Token expires in: %d minutes\n", remaining/60)
	} else {
		fmt.Println("Token expired! Please login again.")
	}
	return nil
}
