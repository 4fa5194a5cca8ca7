/*
 * ragc-go - Console command parser.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package parser turns a console input line into an action against a
// running core.Core and the panel peripherals attached to it.
package parser

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"unicode"

	"github.com/apollo-agc/ragc-go/core"
	"github.com/apollo-agc/ragc-go/peripheral"
)

type cmd struct {
	name    string
	min     int
	process func(*cmdLine, *core.Core, *peripheral.Display) (bool, error)
}

type cmdLine struct {
	line string
	pos  int
}

var cmdList = []cmd{
	{name: "start", min: 3, process: start},
	{name: "stop", min: 3, process: stop},
	{name: "continue", min: 1, process: cont},
	{name: "key", min: 1, process: key},
	{name: "show", min: 2, process: show},
	{name: "quit", min: 1, process: quit},
}

// ProcessCommand runs one console input line. It returns true when the
// console should exit.
func ProcessCommand(commandLine string, c *core.Core, disp *peripheral.Display) (bool, error) {
	line := cmdLine{line: commandLine}
	name := line.getWord()

	match := matchList(name)
	switch len(match) {
	case 0:
		return false, errors.New("command not found: " + name)
	case 1:
		return match[0].process(&line, c, disp)
	default:
		return false, errors.New("ambiguous command: " + name)
	}
}

// CompleteCmd completes a command name for line-editing.
func CompleteCmd(commandLine string) []string {
	line := cmdLine{line: commandLine}
	name := line.getWord()

	matches := matchList(name)
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.name
	}
	return out
}

func matchCommand(m cmd, name string) bool {
	if len(name) > len(m.name) {
		return false
	}
	for i := range name {
		if m.name[i] != name[i] {
			return false
		}
	}
	return len(name) >= m.min
}

func matchList(name string) []cmd {
	if name == "" {
		return nil
	}
	var match []cmd
	for _, m := range cmdList {
		if matchCommand(m, name) {
			match = append(match, m)
		}
	}
	return match
}

func (l *cmdLine) skipSpace() {
	for l.pos < len(l.line) && unicode.IsSpace(rune(l.line[l.pos])) {
		l.pos++
	}
}

func (l *cmdLine) isEOL() bool {
	return l.pos >= len(l.line)
}

func (l *cmdLine) getWord() string {
	l.skipSpace()
	start := l.pos
	for l.pos < len(l.line) && !unicode.IsSpace(rune(l.line[l.pos])) {
		l.pos++
	}
	return strings.ToLower(l.line[start:l.pos])
}

func start(_ *cmdLine, c *core.Core, _ *peripheral.Display) (bool, error) {
	slog.Info("command start")
	c.SendStart()
	return false, nil
}

func stop(_ *cmdLine, c *core.Core, _ *peripheral.Display) (bool, error) {
	slog.Info("command stop")
	c.SendStop()
	return false, nil
}

func cont(_ *cmdLine, c *core.Core, _ *peripheral.Display) (bool, error) {
	slog.Info("command continue")
	c.SendStart()
	return false, nil
}

// key <octal-code> pushes a keypress onto the DSKY keyboard register.
func key(line *cmdLine, _ *core.Core, disp *peripheral.Display) (bool, error) {
	word := line.getWord()
	code, err := strconv.ParseUint(word, 8, 16)
	if err != nil {
		return false, fmt.Errorf("key code must be octal: %s", word)
	}
	disp.PushKey(uint16(code))
	return false, nil
}

func show(_ *cmdLine, c *core.Core, _ *peripheral.Display) (bool, error) {
	fmt.Printf("running: %v  %s\n", c.Running(), c.CPU.RegisterDump())
	return false, nil
}

func quit(_ *cmdLine, c *core.Core, _ *peripheral.Display) (bool, error) {
	slog.Info("command quit")
	c.SendStop()
	return true, nil
}
