package main

import (
	"fmt"
	"net"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the 2048 SSH server",
	Long: `Start an SSH server that lets users connect and play 2048.

Each SSH connection gets its own board. Scores are recorded under the SSH
user name and all users share the same leaderboard.

Host key handling:
  - Relative --host-key paths live under ~/.t2048
  - The key is generated on first start if it does not exist

Examples:
  t2048 serve                           # Listen on the configured address
  t2048 serve --ssh :2222               # Listen on port 2222
  t2048 serve --host-key /etc/t2048/key # Use specific host key
  t2048 serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 2048`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (default from config)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", -1, "Idle timeout in minutes (default from config)")
}

func runServe(cmd *cobra.Command, _ []string) {
	if flagSSHAddr != "" {
		appConfig.SSH.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		appConfig.SSH.HostKey = flagHostKey
	}
	if flagIdleTimeout >= 0 {
		appConfig.SSH.IdleTimeoutMinutes = flagIdleTimeout
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	server, err := tui.NewSSHServer(tui.SSHConfigFrom(appConfig), store, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("2048 SSH server listening on %s\n", server.Addr())
	fmt.Printf("Connect with: ssh localhost -p %s\n", portOf(server.Addr()))
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(cmd.Context()); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// portOf extracts the port from a host:port address.
func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
