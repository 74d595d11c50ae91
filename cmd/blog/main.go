// Package main provides the blog command.
//
// Usage:
//
//	blog serve [--addr :8080] [--posts posts.yaml] [--from out]
//	blog export [--out out] [--concurrency 4] [--clean]
//	blog version
package main

func main() {
	Execute()
}
