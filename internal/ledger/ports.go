// Package ledger defines the ports every transaction store backend
// implements. The store owns the transaction sequence exclusively; readers
// get snapshot copies and never hold mutable references into it.
package ledger

import (
	"context"

	"github.com/narramanikanta858-lang/uni-fin-guardian/internal/core"
)

type (
	// TransactionWriter appends a record to the ledger. The store assigns
	// the unique id and creation timestamp; the caller supplies the rest.
	// The ledger is append-only: there is no update or delete.
	TransactionWriter interface {
		Append(ctx context.Context, t core.Transaction) (core.Transaction, error)
	}

	// TransactionLister returns the full sequence, newest first. That is
	// the canonical read order for every consumer.
	TransactionLister interface {
		All(ctx context.Context) ([]core.Transaction, error)
	}

	// AccountReader returns the fixed account set. Balances are static
	// display data, decoupled from the ledger.
	AccountReader interface {
		Accounts(ctx context.Context) ([]core.Account, error)
	}

	// GoalReader returns the saving goals.
	GoalReader interface {
		Goals(ctx context.Context) ([]core.Goal, error)
	}
)
