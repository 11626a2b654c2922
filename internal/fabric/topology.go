package fabric

// Exchanges are direct-routed and durable. Routing is exact-match: every
// new event type needs an explicit queue and binding here.
const (
	ExchangeAuthEvents        = "auth.events"
	ExchangeTransactionEvents = "transaction.events"
)

const (
	KeyUserRegistered        = "user.registered"
	KeyTransactionCreated    = "transaction.created"
	KeyTransactionCompleted  = "transaction.completed"
	KeyTransactionFailed     = "transaction.failed"
	KeyWalletTxnFinalized    = "wallet.transactionFinalized"
)

const (
	QueueTransactionCreated   = "transaction.created.q"
	QueueTransactionFinalized = "transaction.finalized.q"

	QueueWalletUpdate      = "wallet.update.q"
	QueueWalletRevert      = "wallet.revert.q"
	QueueWalletUserCreated = "wallet.user.q"

	QueueEmailSignup      = "email.signup.q"
	QueueEmailTxCompleted = "email.transactionCompleted.q"
	QueueEmailTxFailed    = "email.transactionFailed.q"

	// QueueDeadLetter has no binding; exhausted messages are published to
	// it directly.
	QueueDeadLetter = "mint.dlq"
)

type Binding struct {
	Queue    string
	Exchange string
	Key      string
}

var Exchanges = []string{
	ExchangeAuthEvents,
	ExchangeTransactionEvents,
}

var Queues = []string{
	QueueTransactionCreated,
	QueueTransactionFinalized,
	QueueWalletUpdate,
	QueueWalletRevert,
	QueueWalletUserCreated,
	QueueEmailSignup,
	QueueEmailTxCompleted,
	QueueEmailTxFailed,
	QueueDeadLetter,
}

var Bindings = []Binding{
	{Queue: QueueEmailSignup, Exchange: ExchangeAuthEvents, Key: KeyUserRegistered},
	{Queue: QueueWalletUserCreated, Exchange: ExchangeAuthEvents, Key: KeyUserRegistered},

	{Queue: QueueTransactionCreated, Exchange: ExchangeTransactionEvents, Key: KeyTransactionCreated},

	{Queue: QueueWalletUpdate, Exchange: ExchangeTransactionEvents, Key: KeyTransactionCompleted},
	{Queue: QueueWalletRevert, Exchange: ExchangeTransactionEvents, Key: KeyTransactionFailed},

	{Queue: QueueEmailTxCompleted, Exchange: ExchangeTransactionEvents, Key: KeyTransactionCompleted},
	{Queue: QueueEmailTxFailed, Exchange: ExchangeTransactionEvents, Key: KeyTransactionFailed},

	{Queue: QueueTransactionFinalized, Exchange: ExchangeTransactionEvents, Key: KeyWalletTxnFinalized},
}
