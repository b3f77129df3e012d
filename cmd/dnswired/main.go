// SPDX-License-Identifier: GPL-3.0-or-later

// Command dnswired is a UDP DNS responder that answers every question
// with a single fixed address record.
package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/netip"
	"os"
	"os/signal"
	"syscall"

	"dnswire/server"
	"dnswire/stats"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

type options struct {
	listen        string
	answerName    string
	answerAddr    string
	answerTTL     uint32
	metricsListen string
	debug         bool
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "dnswired",
		Short:         "UDP DNS responder with a fixed answer record",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.listen, "listen", server.DefaultAddr, "UDP address to listen on")
	flags.StringVar(&opts.answerName, "answer-name", "www.rust-trends.com", "owner name of the fixed answer record")
	flags.StringVar(&opts.answerAddr, "answer-addr", "172.67.221.148", "IPv4 address of the fixed answer record")
	flags.Uint32Var(&opts.answerTTL, "ttl", 60, "TTL in seconds of the fixed answer record")
	flags.StringVar(&opts.metricsListen, "metrics-listen", "", "HTTP address for Prometheus metrics (empty disables)")
	flags.BoolVar(&opts.debug, "debug", false, "log at debug level, including hex dumps of datagrams")
	return cmd
}

func run(opts *options) error {
	level := slog.LevelInfo
	if opts.debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	answerAddr, err := netip.ParseAddr(opts.answerAddr)
	if err != nil {
		return fmt.Errorf("--answer-addr: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	metrics := stats.New(registry)

	srv, err := server.New(server.Config{
		Addr:       opts.listen,
		AnswerName: opts.answerName,
		AnswerAddr: answerAddr,
		AnswerTTL:  opts.answerTTL,
		Logger:     logger,
		Metrics:    metrics,
	})
	if err != nil {
		return err
	}
	if err := srv.Start(); err != nil {
		return err
	}

	if opts.metricsListen != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		go func() {
			logger.Info("metrics listening", "addr", opts.metricsListen)
			if err := http.ListenAndServe(opts.metricsListen, mux); err != nil {
				logger.Error("metrics server failed", "err", err)
			}
		}()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("shutting down", "signal", sig.String())
		srv.Stop()
	}()

	return srv.Serve()
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "dnswired: %s\n", err.Error())
		os.Exit(1)
	}
}
