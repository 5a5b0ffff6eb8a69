// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fingerprint

import (
	"context"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/pii-sentinel/sentinel-client/internal/utils"
)

// Source computes a raw device identifier. Implementations may be slow and
// must honour ctx cancellation.
type Source interface {
	Compute(ctx context.Context) (string, error)
}

// SourceFunc adapts a plain function to [Source].
type SourceFunc func(ctx context.Context) (string, error)

func (f SourceFunc) Compute(ctx context.Context) (string, error) {
	return f(ctx)
}

// machineIDPaths are probed in order; the first readable one wins.
var machineIDPaths = []string{
	"/etc/machine-id",
	"/var/lib/dbus/machine-id",
}

// HostSource derives a stable identifier from host attributes: hostname,
// OS and architecture, CPU count, home directory and, when available, the
// systemd machine id. The attributes are digested with BLAKE2b-256 so the
// raw values never leave the machine.
type HostSource struct {
	readFile func(string) ([]byte, error)
	hostname func() (string, error)
	homeDir  func() (string, error)
}

// NewHostSource returns a [HostSource] bound to the real operating system.
func NewHostSource() *HostSource {
	return &HostSource{
		readFile: os.ReadFile,
		hostname: os.Hostname,
		homeDir:  os.UserHomeDir,
	}
}

// Compute never fails on missing attributes; they contribute an empty part.
func (s *HostSource) Compute(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	host, _ := s.hostname()
	home, _ := s.homeDir()

	return utils.DigestStrings(
		host,
		runtime.GOOS,
		runtime.GOARCH,
		strconv.Itoa(runtime.NumCPU()),
		home,
		s.machineID(),
	), nil
}

func (s *HostSource) machineID() string {
	for _, p := range machineIDPaths {
		b, err := s.readFile(p)
		if err != nil {
			continue
		}
		if id := strings.TrimSpace(string(b)); id != "" {
			return id
		}
	}
	return ""
}
