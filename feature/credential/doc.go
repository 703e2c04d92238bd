// Package credential manages the shared Multivende bearer token: encrypted
// at-rest storage in the auth_app history table, staleness judgment with a
// grace window, and rotation through the OAuth refresh grant.
package credential
