/*
 * ragc-go - Main process.
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

package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/apollo-agc/ragc-go/channel"
	"github.com/apollo-agc/ragc-go/config"
	"github.com/apollo-agc/ragc-go/console"
	"github.com/apollo-agc/ragc-go/core"
	"github.com/apollo-agc/ragc-go/cpu"
	"github.com/apollo-agc/ragc-go/memory"
	"github.com/apollo-agc/ragc-go/peripheral"
	"github.com/apollo-agc/ragc-go/rom"
	"github.com/apollo-agc/ragc-go/util/logger"
)

var (
	configPath string
	romPath    string
)

func main() {
	root := &cobra.Command{
		Use:   "ragc-go",
		Short: "Apollo Guidance Computer emulator",
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Configuration file")
	root.PersistentFlags().StringVarP(&romPath, "rom", "r", "", "Rope image path (overrides the config file)")

	root.AddCommand(
		ropeCommand("retread50", "Run RETREAD50 (Apollo 11 CM pre-launch)"),
		ropeCommand("luminary99", "Run LUMINARY99 (Apollo 11 LM)"),
		ropeCommand("comanche55", "Run COMANCHE55 (Apollo 11 CM)"),
	)

	if err := root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func ropeCommand(name, short string) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(name)
		},
	}
}

func run(ropeName string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, closeLog, err := logger.Open(cfg.Log.FilePath, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("opening log: %w", err)
	}
	defer closeLog()
	slog.SetDefault(log)

	slog.Info("ragc-go started", "rope", ropeName)

	image, err := rom.Load(resolveRomPath(cfg))
	if err != nil {
		return fmt.Errorf("loading rope image: %w", err)
	}

	display := peripheral.NewDisplay()
	downlink, err := peripheral.NewDownlink(cfg.Downlink.ListenAddr)
	if err != nil {
		return fmt.Errorf("starting downlink: %w", err)
	}
	defer downlink.Stop()

	ctl := channel.New(display, downlink)
	mem := memory.NewMap(ctl)
	mem.ROM.Load([36][1024]uint16(image))

	agc := cpu.New(mem)
	agc.Restart()

	emuCore := core.New(agc)
	go emuCore.Start()
	defer emuCore.Stop()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		console.Run(cfg, emuCore, display)
		close(done)
	}()

	select {
	case <-sigChan:
		slog.Info("received shutdown signal")
	case <-done:
		slog.Info("console exited")
	}

	return nil
}

func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.Load()
	}
	return config.LoadFrom(configPath)
}

func resolveRomPath(cfg *config.Config) string {
	if romPath != "" {
		return romPath
	}
	return cfg.Rom.ImagePath
}
