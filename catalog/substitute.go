// SPDX-License-Identifier: MIT
// Package: latex3d/catalog
//
// substitute.go — streaming placeholder substitution.
//
// Contract:
//   • One pass per line; inserted markup is never rescanned.
//   • At a given position the longest matching code wins (ties by code).
//   • Lines are forwarded byte for byte, including their terminators;
//     lines without a code pass through unchanged.
//   • Run checks ctx between lines and stops with ctx.Err() after flushing
//     the lines already written.

package catalog

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Stats reports what a Run did.
type Stats struct {
	Lines       int // lines read
	Substituted int // lines containing at least one code
}

// Substituter replaces placeholder codes with their fragments.
// It is safe for concurrent use.
type Substituter struct {
	codes    []string
	replacer *strings.Replacer
}

// NewSubstituter builds a substituter from code → fragment. Empty codes are
// ignored.
func NewSubstituter(fragments map[string]string) *Substituter {
	codes := make([]string, 0, len(fragments))
	for code := range fragments {
		if code != "" {
			codes = append(codes, code)
		}
	}
	// strings.Replacer tries pairs in argument order
	sort.Slice(codes, func(i, j int) bool {
		if len(codes[i]) != len(codes[j]) {
			return len(codes[i]) > len(codes[j])
		}
		return codes[i] < codes[j]
	})

	pairs := make([]string, 0, 2*len(codes))
	for _, code := range codes {
		pairs = append(pairs, code, fragments[code])
	}
	return &Substituter{codes: codes, replacer: strings.NewReplacer(pairs...)}
}

// Codes returns the known codes, longest first.
func (s *Substituter) Codes() []string {
	return append([]string(nil), s.codes...)
}

// Line substitutes every code occurring in line.
func (s *Substituter) Line(line string) string {
	if len(s.codes) == 0 {
		return line
	}
	return s.replacer.Replace(line)
}

// Run copies r to w line by line, substituting codes.
func (s *Substituter) Run(ctx context.Context, r io.Reader, w io.Writer) (Stats, error) {
	var st Stats
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)

	for {
		if err := ctx.Err(); err != nil {
			// forward what was already substituted
			_ = bw.Flush()
			return st, err
		}

		line, rerr := br.ReadString('\n')
		if rerr != nil && !errors.Is(rerr, io.EOF) {
			return st, fmt.Errorf("Run: read: %w", rerr)
		}
		if line != "" {
			st.Lines++
			out := s.Line(line)
			if out != line {
				st.Substituted++
			}
			if _, err := bw.WriteString(out); err != nil {
				return st, fmt.Errorf("Run: write: %w", err)
			}
		}
		if rerr != nil {
			break
		}
	}

	if err := bw.Flush(); err != nil {
		return st, fmt.Errorf("Run: flush: %w", err)
	}
	return st, nil
}
