package main

const sampleDigits = "0123456789"

// sampleLines builds a staircase document: line i holds the first i+1
// characters of a repeating digit run, so every line is one longer than
// the one above it.
func sampleLines(n int) []string {
	lines := make([]string, n)
	run := make([]byte, 0, n)
	for i := range lines {
		run = append(run, sampleDigits[i%len(sampleDigits)])
		lines[i] = string(run)
	}
	return lines
}
