// Package proto implements the plain-text line grammar spoken between
// the two players. Lines prefixed HD_ arrive from the peer, DH_ lines
// are the local responses, DD_ lines are debug commands. Anything
// outside the closed grammar decodes to ok=false and is dropped by the
// engine without a response.
package proto
