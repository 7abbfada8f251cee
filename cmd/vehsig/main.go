// The vehsig command generates vehicle signal stub components and runs
// them under the injection harness.
package main

func main() {
	execute()
}
