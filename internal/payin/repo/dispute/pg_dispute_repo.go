package dispute_repo

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"PaymentService/internal/payin/domain/dispute"
	"PaymentService/pkg/postgres"

	"github.com/Masterminds/squirrel"
)

// PgDisputeRepo serves reads from the replica and the evidence update from
// the primary.
type PgDisputeRepo struct {
	primary postgres.Executor
	replica postgres.Executor
	builder squirrel.StatementBuilderType
}

func NewPgDisputeRepo(cluster *postgres.Cluster) dispute.DisputeRepo {
	return newPgDisputeRepo(cluster.Primary(), cluster.Replica(), cluster.Builder())
}

func newPgDisputeRepo(primary, replica postgres.Executor, builder squirrel.StatementBuilderType) *PgDisputeRepo {
	return &PgDisputeRepo{primary: primary, replica: replica, builder: builder}
}

func (r *PgDisputeRepo) GetDisputeByDisputeID(ctx context.Context, input dispute.GetStripeDisputeByIDInput) (*dispute.StripeDispute, error) {
	var where squirrel.Eq
	if input.DisputeIDType.MatchesStripeID() {
		where = squirrel.Eq{"stripe_dispute_id": input.StripeDisputeID}
	} else {
		id, err := strconv.ParseInt(input.StripeDisputeID, 10, 64)
		if err != nil {
			// internal ids are numeric, anything else cannot match
			return nil, nil
		}
		where = squirrel.Eq{"id": id}
	}

	disputes, err := r.queryDisputes(ctx, r.selectDisputes().Where(where))
	if err != nil {
		return nil, fmt.Errorf("query dispute by id: %w", err)
	}
	if len(disputes) == 0 {
		return nil, nil
	}
	return &disputes[0], nil
}

func (r *PgDisputeRepo) UpdateDisputeDetails(ctx context.Context, set dispute.UpdateStripeDisputeSetInput, where dispute.UpdateStripeDisputeWhereInput) (*dispute.StripeDispute, error) {
	query, args, err := r.builder.Update(stripeDisputeTable).
		Set("evidence_submitted_at", set.EvidenceSubmittedAt).
		Set("updated_at", set.UpdatedAt).
		Where(squirrel.Eq{"stripe_dispute_id": where.ID}).
		Suffix("RETURNING " + strings.Join(stripeDisputeColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update dispute query: %w", err)
	}

	rows, err := r.primary.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("update dispute details: %w", err)
	}

	disputes, err := parseStripeDisputeRows(rows)
	if err != nil {
		return nil, fmt.Errorf("update dispute details: %w", err)
	}
	if len(disputes) == 0 {
		return nil, nil
	}
	return &disputes[0], nil
}

func (r *PgDisputeRepo) ListDisputesByPayerID(ctx context.Context, input dispute.GetAllStripeDisputesByPayerIDInput) ([]dispute.StripeDispute, error) {
	if len(input.StripeCardIDs) == 0 {
		return []dispute.StripeDispute{}, nil
	}

	disputes, err := r.queryDisputes(ctx, r.selectDisputes().
		Where(squirrel.Eq{"stripe_card_id": input.StripeCardIDs}))
	if err != nil {
		return nil, fmt.Errorf("query disputes by payer: %w", err)
	}
	return disputes, nil
}

func (r *PgDisputeRepo) ListDisputesByPaymentMethodID(ctx context.Context, input dispute.GetAllStripeDisputesByPaymentMethodIDInput) ([]dispute.StripeDispute, error) {
	disputes, err := r.queryDisputes(ctx, r.selectDisputes().
		Where(squirrel.Eq{"stripe_card_id": input.StripeCardID}))
	if err != nil {
		return nil, fmt.Errorf("query disputes by payment method: %w", err)
	}
	return disputes, nil
}

func (r *PgDisputeRepo) GetDisputesByDdConsumerID(ctx context.Context, input dispute.GetCumulativeAmountInput) ([]dispute.StripeDispute, error) {
	if len(input.CardIDs) == 0 || len(input.Reasons) == 0 {
		return []dispute.StripeDispute{}, nil
	}

	disputes, err := r.queryDisputes(ctx, r.selectDisputes().
		Where(squirrel.Eq{"stripe_card_id": input.CardIDs}).
		Where(squirrel.Eq{"reason": input.Reasons}).
		Where(squirrel.Gt{"disputed_at": input.StartTime}))
	if err != nil {
		return nil, fmt.Errorf("query disputes by consumer: %w", err)
	}
	return disputes, nil
}

func (r *PgDisputeRepo) GetDisputesByDdStripeCardID(ctx context.Context, input dispute.GetCumulativeCountInput) ([]dispute.StripeDispute, error) {
	if len(input.Reasons) == 0 {
		return []dispute.StripeDispute{}, nil
	}

	disputes, err := r.queryDisputes(ctx, r.selectDisputes().
		Where(squirrel.Eq{"stripe_card_id": input.StripeCardID}).
		Where(squirrel.Eq{"reason": input.Reasons}).
		Where(squirrel.Gt{"disputed_at": input.StartTime}))
	if err != nil {
		return nil, fmt.Errorf("query disputes by stripe card: %w", err)
	}
	return disputes, nil
}

func (r *PgDisputeRepo) selectDisputes() squirrel.SelectBuilder {
	return r.builder.Select(stripeDisputeColumns...).From(stripeDisputeTable)
}

// queryDisputes runs a read against the replica.
func (r *PgDisputeRepo) queryDisputes(ctx context.Context, q squirrel.SelectBuilder) ([]dispute.StripeDispute, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := r.replica.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	disputes, err := parseStripeDisputeRows(rows)
	if err != nil {
		return nil, err
	}
	if disputes == nil {
		disputes = []dispute.StripeDispute{}
	}
	return disputes, nil
}
