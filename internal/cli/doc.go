// Package cli is the interactive terminal front-end of lexdesk.
//
// It runs a read-eval-print loop over the record gateways: every command
// group (clients, cases, docs, acct, cal, liq) maps onto one gateway, forms
// are collected with line prompts, and results are printed as aligned
// tables. A login is required for everything but help and exit; the acct
// and liq groups and useradd additionally require the admin role.
//
// On a fresh database with no users the App asks for an initial admin
// account before the loop starts.
package cli
