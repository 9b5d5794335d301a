package cmd

import (
	"context"
	"os/signal"
	"strconv"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pyrex41/docserve/pkg/server"
)

const (
	defaultPort = 8000
	defaultIP   = "0.0.0.0"

	docsTitle = "Documentation Server"
	blogTitle = "Blog Server"
)

var (
	port     int
	hostIP   string
	serveDir string
)

var docsCmd = &cobra.Command{
	Use:   "docs [port]",
	Short: "serve the documentation tree",
	Long:  `Serve the documentation tree, advertising the nested blog/ path in the banner.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runServe(args, docsTitle, true)
	},
}

var blogCmd = &cobra.Command{
	Use:   "blog [port]",
	Short: "serve the blog tree",
	Long:  `Serve the blog tree.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runServe(args, blogTitle, false)
	},
}

func serveInit() {
	pf := rootCmd.PersistentFlags()
	pf.IntVarP(&port, "port", "p", defaultPort, "port on which to listen")
	pf.StringVar(&hostIP, "ip", defaultIP, "IP address on which to listen")
	pf.StringVarP(&serveDir, "dir", "d", ".", "base directory with files to serve")
	_ = viper.BindPFlag("port", pf.Lookup("port"))
	_ = viper.BindPFlag("ip", pf.Lookup("ip"))
	_ = viper.BindPFlag("dir", pf.Lookup("dir"))
}

// parsePort interprets the optional positional port argument. It wins
// over the --port flag and the DOCSERVE_PORT environment variable.
func parsePort(args []string, fallback int) (int, error) {
	if len(args) == 0 {
		return fallback, nil
	}
	return strconv.Atoi(args[0])
}

func runServe(args []string, title string, advertiseBlog bool) {
	p, err := parsePort(args, viper.GetInt("port"))
	if err != nil {
		log.Fatalf("invalid port %q: %s", args[0], err)
	}

	srv := server.New(server.Config{
		Port:          p,
		Address:       viper.GetString("ip"),
		Dir:           viper.GetString("dir"),
		Title:         title,
		AdvertiseBlog: advertiseBlog,
	})
	if err := srv.Listen(); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := srv.Serve(ctx); err != nil {
		log.Fatal(err)
	}
}
