// Package rest exposes the administrator and vehicle API over HTTP using gin.
//
// Every protected route passes through a role gate before its handler runs.
// Failures are answered with a JSON body of the form
//
//	{"Mensagens": ["..."]}
//
// and never carry driver or stack details.
package rest
