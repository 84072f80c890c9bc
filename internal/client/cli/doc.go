// Package cli is the interactive front end of the SportRadar client: a
// read–eval–print loop whose commands stand in for the pages of the web
// application. Protected commands are wrapped by the same guards the pages
// use, so an unauthenticated or under-privileged user is redirected rather
// than shown the protected content.
package cli
