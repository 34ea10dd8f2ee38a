// Package awp5 is a client for the Archiware P5 data management suite.
//
// P5 exposes its managed resources (jobs, volumes, pools, plans, ...)
// through the nsdchat command line tool shipped with every installation.
// This package wraps nsdchat: every operation starts one nsdchat process
// against an authenticated server session and parses its reply. No P5
// wire protocol is implemented here.
//
// Operations come in two equivalent forms: package functions taking a
// *Connection and an identifier first,
//
//	online, err := awp5.VolumeIsOnline(conn, "LTO01")
//
// and methods on thin resource values,
//
//	online, err := awp5.NewVolume(conn, "LTO01").IsOnline()
//
// Both forms run the same command; pick whichever reads better.
package awp5
