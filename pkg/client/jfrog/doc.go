// Package jfrog fetches npm credentials from a jFrog Artifactory registry.
//
// A single authenticated GET against "<registry>auth/jfrog" returns the
// .npmrc lines Artifactory generates for the caller's API key. [Client.Fetch]
// performs that request and [ParseEntries] turns the body into entries ready
// to be written to the user's npm configuration.
package jfrog
