// Waypoint - Travel Destination Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/waypoint

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/tomtom215/waypoint/internal/recommend"
)

// errInputClosed is returned when input ends before all answers are given.
var errInputClosed = errors.New("input closed")

// session runs one question-and-answer exchange on a terminal.
type session struct {
	in  *bufio.Scanner
	out io.Writer
}

func newSession(in io.Reader, out io.Writer) *session {
	return &session{in: bufio.NewScanner(in), out: out}
}

// run asks for user, category and city, then prints the recommendation.
func (s *session) run(ctx context.Context, engine *recommend.Engine, seed int64) error {
	table := engine.Table()

	userID, err := s.askUser(table)
	if err != nil {
		return err
	}
	category, err := s.askChoice("Category", table.Categories())
	if err != nil {
		return err
	}
	city, err := s.askChoice("City", table.Cities())
	if err != nil {
		return err
	}

	rec, err := engine.Recommend(ctx, recommend.Request{
		UserID:   userID,
		Category: category,
		City:     city,
		Seed:     seed,
	})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(s.out, "%s:  %s\n", rec.Category, rec.Place.Name)
	return err
}

// askUser reads a user id, re-prompting on non-numeric input. Ids without
// history are accepted with a note.
func (s *session) askUser(table *recommend.Table) (int, error) {
	prompt := "Add User ID: "
	if ids := table.UserIDs(); len(ids) > 0 {
		prompt = fmt.Sprintf("Add User ID (%d to %d): ", ids[0], ids[len(ids)-1])
	}

	for {
		line, err := s.ask(prompt)
		if err != nil {
			return 0, err
		}
		id, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(s.out, "User ID must be a number.")
			continue
		}
		if !table.HasUser(id) {
			fmt.Fprintf(s.out, "User %d is new. No history found.\n", id)
		}
		return id, nil
	}
}

// askChoice reads a value that must be one of options.
func (s *session) askChoice(label string, options []string) (string, error) {
	prompt := fmt.Sprintf("Add %s (%s): ", label, strings.Join(options, ", "))
	line, err := s.ask(prompt)
	for err == nil && !slices.Contains(options, line) {
		line, err = s.ask(fmt.Sprintf("%s not found.\n%s", label, prompt))
	}
	return line, err
}

func (s *session) ask(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(s.in.Text()), nil
}
