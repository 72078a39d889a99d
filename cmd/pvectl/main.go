package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pvetools/pveclient/internal/config"
	"github.com/pvetools/pveclient/pve"
)

var (
	host        string
	port        int
	tokenID     string
	tokenSecret string
	format      string
	insecure    bool
	debug       bool
	timeout     time.Duration
)

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pvectl",
		Short: "pvectl talks to the Proxmox VE API with token auth",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.InitLogger()
			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				os.Setenv("PVE_DEBUG", "true")
				log.Debug().Msg("debug logging enabled")
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	settings, err := config.Load()
	if err != nil {
		settings = config.Settings{Port: pve.DefaultPort, ResponseType: "array", Timeout: 30 * time.Second}
		log.Warn().Err(err).Msg("ignoring malformed PVE_* environment")
	}
	timeout = settings.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&host, "host", settings.Host, "Proxmox VE hostname")
	pf.IntVar(&port, "port", settings.Port, "Proxmox VE API port")
	pf.StringVar(&tokenID, "token-id", settings.TokenID, "API token id (user@realm!name)")
	pf.StringVar(&tokenSecret, "token-secret", settings.TokenSecret, "API token secret")
	pf.StringVar(&format, "format", settings.ResponseType, "Response type (array, object, json, html, extjs, text, png, pngb64)")
	pf.BoolVar(&insecure, "insecure", settings.InsecureTLS, "Skip TLS certificate verification")
	pf.BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newNodesCmd())
	rootCmd.AddCommand(newClusterCmd())
	rootCmd.AddCommand(newAccessCmd())
	rootCmd.AddCommand(newPoolsCmd())
	rootCmd.AddCommand(newStoragesCmd())
	rootCmd.AddCommand(newCreatePoolCmd())
	rootCmd.AddCommand(newCreateStorageCmd())
	rootCmd.AddCommand(newGetCmd())

	return rootCmd
}

func newClient() (*pve.Client, error) {
	if host == "" {
		return nil, fmt.Errorf("--host or PVE_HOST is required")
	}
	if tokenID == "" || tokenSecret == "" {
		return nil, fmt.Errorf("--token-id and --token-secret (or PVE_TOKEN_ID/PVE_TOKEN_SECRET) are required")
	}

	opts := []pve.Option{
		pve.WithPort(port),
		pve.WithResponseType(pve.ResponseType(format)),
	}
	if insecure {
		opts = append(opts, pve.WithInsecureTLS())
	}
	return pve.New(tokenID, tokenSecret, host, opts...)
}

func callContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), timeout)
}

// printResult writes structured results as indented JSON and string results
// (text, html, png data URIs) verbatim.
func printResult(v any) error {
	switch r := v.(type) {
	case nil:
		fmt.Println("(no result)")
		return nil
	case string:
		fmt.Println(r)
		return nil
	default:
		b, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	}
}

// simpleGetCmd builds a subcommand that calls one fixed accessor and prints
// the result.
func simpleGetCmd(use, short string, call func(context.Context, *pve.Client) (any, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := callContext(cmd)
			defer cancel()

			start := time.Now()
			res, err := call(ctx, c)
			if err != nil {
				log.Error().Err(err).Str("host", host).Dur("elapsed", time.Since(start)).Msg(use + " failed")
				return err
			}
			log.Debug().Str("host", host).Dur("elapsed", time.Since(start)).Msg(use + " completed")
			return printResult(res)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return simpleGetCmd("version", "Show the API version of the target host", func(ctx context.Context, c *pve.Client) (any, error) {
		return c.Version(ctx)
	})
}

func newNodesCmd() *cobra.Command {
	return simpleGetCmd("nodes", "List cluster nodes", func(ctx context.Context, c *pve.Client) (any, error) {
		return c.Nodes(ctx)
	})
}

func newClusterCmd() *cobra.Command {
	return simpleGetCmd("cluster", "Show the cluster index", func(ctx context.Context, c *pve.Client) (any, error) {
		return c.Cluster(ctx)
	})
}

func newAccessCmd() *cobra.Command {
	return simpleGetCmd("access", "Show the access control index", func(ctx context.Context, c *pve.Client) (any, error) {
		return c.Access(ctx)
	})
}

func newPoolsCmd() *cobra.Command {
	return simpleGetCmd("pools", "List resource pools", func(ctx context.Context, c *pve.Client) (any, error) {
		return c.Pools(ctx)
	})
}

func newStoragesCmd() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "storages",
		Short: "List datastores, optionally filtered by backend kind",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := callContext(cmd)
			defer cancel()

			res, err := c.Storages(ctx, kind)
			if err != nil {
				return err
			}
			if res == nil && kind != "" {
				log.Warn().Str("type", kind).Msg("unknown storage kind, nothing queried")
			}
			return printResult(res)
		},
	}

	cmd.Flags().StringVar(&kind, "type", "", "Storage backend kind (lvm, nfs, dir, zfs, rbd, iscsi, sheepdog, glusterfs, iscsidirect)")
	return cmd
}

func newCreatePoolCmd() *cobra.Command {
	var poolID, comment string

	cmd := &cobra.Command{
		Use:   "create-pool",
		Short: "Create a resource pool",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := callContext(cmd)
			defer cancel()

			data := pve.Params{"poolid": poolID}
			if comment != "" {
				data["comment"] = comment
			}
			res, err := c.CreatePool(ctx, data)
			if err != nil {
				return err
			}
			return printResult(res)
		},
	}

	cmd.Flags().StringVar(&poolID, "pool-id", "", "Pool identifier (required)")
	cmd.Flags().StringVar(&comment, "comment", "", "Pool comment (optional)")
	_ = cmd.MarkFlagRequired("pool-id")
	return cmd
}

func newCreateStorageCmd() *cobra.Command {
	var storage, kind string
	var extra []string

	cmd := &cobra.Command{
		Use:   "create-storage",
		Short: "Register a datastore",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := callContext(cmd)
			defer cancel()

			data := pve.Params{"storage": storage, "type": kind}
			for _, kv := range extra {
				k, v, ok := strings.Cut(kv, "=")
				if !ok {
					return fmt.Errorf("invalid --param %q, expected key=value", kv)
				}
				data[k] = v
			}
			res, err := c.CreateStorage(ctx, data)
			if err != nil {
				return err
			}
			return printResult(res)
		},
	}

	cmd.Flags().StringVar(&storage, "storage", "", "Datastore identifier (required)")
	cmd.Flags().StringVar(&kind, "type", "", "Storage backend kind (required)")
	cmd.Flags().StringArrayVar(&extra, "param", nil, "Additional key=value parameters (repeatable)")
	_ = cmd.MarkFlagRequired("storage")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

func newGetCmd() *cobra.Command {
	var params []string

	cmd := &cobra.Command{
		Use:   "get <path>",
		Short: "GET an arbitrary API path, e.g. /nodes/pve1/qemu",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := callContext(cmd)
			defer cancel()

			data := pve.Params{}
			for _, kv := range params {
				k, v, ok := strings.Cut(kv, "=")
				if !ok {
					return fmt.Errorf("invalid --param %q, expected key=value", kv)
				}
				data[k] = v
			}
			res, err := c.Get(ctx, args[0], data)
			if err != nil {
				return err
			}
			return printResult(res)
		},
	}

	cmd.Flags().StringArrayVar(&params, "param", nil, "Query parameters as key=value (repeatable)")
	return cmd
}
