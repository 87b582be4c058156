// Package client provides clients for the remote services jnl talks to.
//
//   - jfrog: npm credential requests against a jFrog registry
package client
