package log_messages

const (
	FailedLoadingConfiguration = "failed to load configuration"
	ServerStartFailure         = "failed to start HTTP server"
	ServerShutdown             = "shutting down application"
	ServerExiting              = "server exiting"
	CleanupStarted             = "cleanup of resources started"
	CleanupCompleted           = "cleanup of resources completed"

	StartupDBProbeFailed  = "initial database connection failed"
	StartupDBProbeOK      = "initial database connection successful"
	OracleConnectAttempt  = "attempting Oracle connection"
	OracleConnectFailed   = "Oracle connection failed"
	OracleConnectOK       = "Oracle connection established"
	InsertSubmissionError = "failed to insert payment submission"

	SoapRequestBuildError = "failed to build ConsultaPago envelope"
	SoapRequestSendError  = "failed to call ConsultaPago service"
	SoapResponseParseFail = "failed to parse ConsultaPago response"

	QueryRequestReceived = "payment query request received"
	QueryRequestComplete = "payment query completed"
	QueryRequestFailed   = "payment query failed"

	PaymentStubInvoked       = "payment endpoint invoked (not implemented)"
	CancelPaymentStubInvoked = "cancel-payment endpoint invoked (not implemented)"
)
