package controllers

import "github.com/recisbogor/recup-backend/services"

// Service clients wired in main (tests install fakes).
var (
	Media             services.Uploader
	Payments          services.PaymentGateway
	MidtransServerKey string
)

// uploadWorkers bounds concurrent uploads to the media host per request.
const uploadWorkers = 4
