// Package mail models the outbound messaging vocabulary of the dispatcher:
// the Message value handed to the transport and the Status the transport
// reports back (Accepted, Rejected, or TransportFault).
package mail
