/*
Package factors splits integers into two factors by trial division.

For every number n it searches the smallest divisor i in [2, floor(sqrt(n))] and
reports the pair (i, n/i). Primes, 0 and 1 have no such pair and produce no output.

# Usage

The Engine reads a file of integers, one per line, and writes "n=i*j" for every
number that has a factor pair, followed by the elapsed time.

	eng := factors.New()
	h := report.NewTextHandler(os.Stdout)
	if _, err := eng.RunFile(ctx, "numbers.txt", h); err != nil {
		log.Fatal(err)
	}

Results can be cached (see ports.ResultCache) and observed through domain.Hooks.
The same Engine backs the CLI, the HTTP API and the MCP server in cmd/factors.
*/
package factors
