// SPDX-License-Identifier: GPL-3.0-or-later

// Package server implements a minimal UDP DNS responder that answers
// every question with a single fixed address record.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/netip"

	"dnswire"
	"dnswire/hexdump"
	"dnswire/stats"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultAddr is the listen address used when [Config.Addr] is empty.
const DefaultAddr = ":1053"

// Config configures a [*Server].
type Config struct {
	// Addr is the OPTIONAL UDP listen address; [DefaultAddr] when empty.
	Addr string

	// AnswerName is the MANDATORY owner name of the fixed answer
	// record. It may contain non-ASCII characters and is
	// IDNA-normalized once at construction time.
	AnswerName string

	// AnswerAddr is the MANDATORY IPv4 address of the fixed answer.
	AnswerAddr netip.Addr

	// AnswerTTL is the TTL in seconds of the fixed answer.
	AnswerTTL uint32

	// Logger is the OPTIONAL logger; [slog.Default] when nil.
	Logger *slog.Logger

	// Metrics is the OPTIONAL counter set; counters on a private
	// registry are used when nil.
	Metrics *stats.Metrics
}

// Server is the UDP responder.
//
// The serving loop is single-threaded: one datagram is received,
// decoded, answered, and sent before the next receive, with a single
// reused buffer. Construct using [New].
type Server struct {
	addr    string
	answer  *dnswire.ResourceRecord
	conn    *net.UDPConn
	logger  *slog.Logger
	metrics *stats.Metrics
}

// New validates cfg, builds the fixed answer record once, and returns
// a server that is not yet listening.
func New(cfg Config) (*Server, error) {
	answer, err := dnswire.NewARecord(cfg.AnswerName, cfg.AnswerAddr, cfg.AnswerTTL)
	if err != nil {
		return nil, err
	}
	addr := cfg.Addr
	if addr == "" {
		addr = DefaultAddr
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	metrics := cfg.Metrics
	if metrics == nil {
		metrics = stats.New(prometheus.NewRegistry())
	}
	return &Server{
		addr:    addr,
		answer:  answer,
		logger:  logger,
		metrics: metrics,
	}, nil
}

// Start binds the UDP socket.
func (s *Server) Start() error {
	udpAddr, err := net.ResolveUDPAddr("udp", s.addr)
	if err != nil {
		return fmt.Errorf("resolve %q: %w", s.addr, err)
	}
	conn, err := net.ListenUDP("udp", udpAddr)
	if err != nil {
		return fmt.Errorf("listen on %q: %w", s.addr, err)
	}
	s.conn = conn
	s.logger.Info("dns responder listening", "addr", conn.LocalAddr().String())
	return nil
}

// LocalAddr returns the bound socket address, or nil before [Server.Start].
func (s *Server) LocalAddr() net.Addr {
	if s.conn == nil {
		return nil
	}
	return s.conn.LocalAddr()
}

// Stop closes the socket, unblocking [Server.Serve].
func (s *Server) Stop() {
	if s.conn != nil {
		s.conn.Close()
	}
}

// Serve runs the receive loop until [Server.Stop] closes the socket,
// in which case it returns nil. The receive blocks indefinitely: there
// are no timeouts and no retries.
//
// A datagram that fails to decode is dropped without a response; the
// failure is logged and counted and the loop keeps serving.
func (s *Server) Serve() error {
	buf := make([]byte, dnswire.MaxMessageSize)
	for {
		n, peer, err := s.conn.ReadFromUDP(buf)
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("receive: %w", err)
		}
		s.metrics.QueriesReceived.Inc()
		s.handle(buf[:n], peer)
	}
}

// handle processes a single datagram to completion.
func (s *Server) handle(raw []byte, peer *net.UDPAddr) {
	if s.logger.Enabled(context.Background(), slog.LevelDebug) {
		s.logger.Debug("received datagram",
			"peer", peer.String(), "bytes", len(raw), "dump", "\n"+hexdump.Dump(raw))
	}

	header, err := dnswire.ParseHeader(raw)
	if err != nil {
		s.drop(peer, err)
		return
	}
	question, err := dnswire.ParseQuestion(raw[dnswire.HeaderLen:])
	if err != nil {
		s.drop(peer, err)
		return
	}
	s.logger.Debug("decoded question",
		"name", question.String(), "type", question.Type.String(), "class", question.Class.String())

	response := s.buildResponse(header, question)
	if _, err := s.conn.WriteToUDP(response, peer); err != nil {
		s.logger.Warn("cannot send response", "peer", peer.String(), "err", err)
		s.metrics.SendFailures.Inc()
		return
	}
	s.metrics.ResponsesSent.Inc()
}

// drop discards a malformed datagram without sending a response.
func (s *Server) drop(peer *net.UDPAddr, err error) {
	s.logger.Warn("dropping malformed datagram", "peer", peer.String(), "err", err)
	s.metrics.MalformedDropped.Inc()
}

// buildResponse derives the response header from the query header,
// echoes the question, and attaches the fixed answer.
func (s *Server) buildResponse(query *dnswire.Header, question *dnswire.Question) []byte {
	rcode := dnswire.RcodeNoError
	if query.Opcode != dnswire.OpcodeQuery {
		rcode = dnswire.RcodeNotImplemented
	}
	header := &dnswire.Header{
		ID:      query.ID,
		QR:      true,
		Opcode:  query.Opcode,
		AA:      false,
		TC:      false,
		RD:      query.RD,
		RA:      false,
		Z:       0,
		Rcode:   rcode,
		QDCount: 1,
		ANCount: 1,
		NSCount: 0,
		ARCount: 0,
	}

	response := make([]byte, 0, dnswire.MaxMessageSize)
	response = append(response, header.Pack()...)
	response = append(response, question.Pack()...)
	response = append(response, s.answer.Pack()...)
	return response
}
