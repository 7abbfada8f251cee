package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/vehsim/vehsig/simulation"
	"github.com/vehsim/vehsig/swc/vdy"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the VDY stub component under the injection harness.",
	Long: "`serve` builds a VDY stub component, registers its receive " +
		"ports with a simulation, and serves the harness control API " +
		"until interrupted. Settings come from flags, the environment, " +
		"or a .env file.",
	Run: func(cmd *cobra.Command, _ []string) {
		// A missing .env file is fine, explicit env vars still apply.
		_ = godotenv.Load()

		builder := simulation.MakeBuilder()

		if port := monitorPort(cmd); port != 0 {
			builder = builder.WithMonitorPort(port)
		}

		noRecording, _ := cmd.Flags().GetBool("no-recording")
		if noRecording || os.Getenv("VEHSIG_RECORDING_OFF") != "" {
			builder = builder.WithoutRecording()
		} else if output := outputFileName(cmd); output != "" {
			builder = builder.WithOutputFileName(output)
		}

		sim := builder.Build()
		vdy.MakeBuilder().WithSimulation(sim).Build("VDY")

		if open, _ := cmd.Flags().GetBool("open"); open {
			url := "http://" + sim.GetMonitor().Addr()
			if err := browser.OpenURL(url); err != nil {
				fmt.Fprintf(os.Stderr,
					"Failed to open browser: %v\n", err)
			}
		}

		waitForInterrupt()
		sim.Terminate()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().Int("port", 0,
		"Port for the harness control server")
	serveCmd.Flags().Bool("no-recording", false,
		"Disable injection recording")
	serveCmd.Flags().String("output", "",
		"Name of the recording database file, without extension")
	serveCmd.Flags().Bool("open", false,
		"Open the harness control server in a browser")
}

func monitorPort(cmd *cobra.Command) int {
	port, _ := cmd.Flags().GetInt("port")
	if port != 0 {
		return port
	}

	env := os.Getenv("VEHSIG_MONITOR_PORT")
	if env == "" {
		return 0
	}

	port, err := strconv.Atoi(env)
	if err != nil {
		log.Fatalf("Error parsing VEHSIG_MONITOR_PORT: %v", err)
	}

	return port
}

func outputFileName(cmd *cobra.Command) string {
	output, _ := cmd.Flags().GetString("output")
	if output != "" {
		return output
	}

	return os.Getenv("VEHSIG_OUTPUT")
}

func waitForInterrupt() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	fmt.Println("Shutting down")
}
