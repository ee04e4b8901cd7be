/*
Package domain contains the core value types shared by every part of factors.

It is kept free of I/O, persistence and transport concerns. Adapters (cache,
HTTP, MCP) and the CLI depend on it, never the other way around.

# Key Entities

  - FactorPair: two factors of a number, smallest divisor first.
  - Result: the outcome of factorizing one number. Found is false for primes, 0 and 1.
  - ParseError: a line of input that could not be turned into a number.
  - Hooks: callbacks fired while a batch of numbers is processed.
*/
package domain
