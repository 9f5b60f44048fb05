// Package auth handles the PIN login to the iDM web interface and the
// lifecycle of the CSRF token every later request has to carry.
package auth
