/*
Package fitsdk provides a client SDK and shared wire types for the FitGate
onboarding service.

# Overview

The package has two halves: the request/response types the HTTP API speaks
(also referenced by the swagger annotations), and a small Client used by
integrations and the end-to-end test suite.

Start an onboarding flow and walk it:

	client := fitsdk.NewClient("https://fitgate.example.com")

	start, err := client.StartSession(ctx)
	// answer questions until Completion is non-nil
	resp, err := client.SubmitAnswer(ctx, start.SessionToken, fitsdk.SubmitAnswerRequest{Value: "Jess"})

Log in with the minted access code and read entitlements:

	login, err := client.Login(ctx, resp.Completion.AccessCode)
	ents, err := client.Entitlements(ctx, login.SessionToken)

# Error Handling

Non-2xx responses decode into *APIError carrying the service's error code
and description.
*/
package fitsdk
