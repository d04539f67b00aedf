package dispute_repo

import (
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"PaymentService/internal/payin/domain/dispute"

	"github.com/Masterminds/squirrel"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var selectAll = "SELECT " + strings.Join(stripeDisputeColumns, ", ") + " FROM stripe_dispute"

type testRepo struct {
	repo    *PgDisputeRepo
	primary pgxmock.PgxPoolIface
	replica pgxmock.PgxPoolIface
}

func newTestRepo(t *testing.T) testRepo {
	t.Helper()

	primary, err := pgxmock.NewPool()
	require.NoError(t, err)
	replica, err := pgxmock.NewPool()
	require.NoError(t, err)

	t.Cleanup(func() {
		// any statement sent to the wrong pool fails here as unexpected
		assert.NoError(t, primary.ExpectationsWereMet())
		assert.NoError(t, replica.ExpectationsWereMet())
		primary.Close()
		replica.Close()
	})

	builder := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	return testRepo{
		repo:    newPgDisputeRepo(primary, replica, builder),
		primary: primary,
		replica: replica,
	}
}

func disputeRows(mock pgxmock.PgxPoolIface, entities ...StripeDisputeDbEntity) *pgxmock.Rows {
	rows := mock.NewRows(stripeDisputeColumns)
	for _, e := range entities {
		rows.AddRow(e.ID, e.StripeDisputeID, e.DisputedAt, e.Amount, e.Fee, e.Net, e.Currency,
			e.ChargedAt, e.Reason, e.Status, e.EvidenceDueBy, e.EvidenceSubmittedAt, e.UpdatedAt,
			e.StripeCardID, e.StripeChargeID)
	}
	return rows
}

func sampleEntity(id int64, stripeID string, cardID int64) StripeDisputeDbEntity {
	disputedAt := time.Date(2024, 2, 10, 8, 0, 0, 0, time.UTC)
	currency := "usd"
	return StripeDisputeDbEntity{
		ID:              id,
		StripeDisputeID: stripeID,
		DisputedAt:      disputedAt,
		Amount:          2500,
		Fee:             1500,
		Net:             -4000,
		Currency:        &currency,
		ChargedAt:       disputedAt.Add(-48 * time.Hour),
		Reason:          "fraudulent",
		Status:          "needs_response",
		EvidenceDueBy:   disputedAt.Add(7 * 24 * time.Hour),
		StripeCardID:    cardID,
		StripeChargeID:  900 + id,
	}
}

func TestGetDisputeByDisputeID(t *testing.T) {
	ctx := context.Background()

	t.Run("should match stripe dispute id on replica by default", func(t *testing.T) {
		tr := newTestRepo(t)
		entity := sampleEntity(1, "dp_1", 10)

		tr.replica.ExpectQuery(regexp.QuoteMeta(selectAll + " WHERE stripe_dispute_id = $1")).
			WithArgs("dp_1").
			WillReturnRows(disputeRows(tr.replica, entity))

		result, err := tr.repo.GetDisputeByDisputeID(ctx, dispute.GetStripeDisputeByIDInput{StripeDisputeID: "dp_1"})

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, entity.ToStripeDispute(), *result)
	})

	t.Run("should match stripe dispute id when type is explicit", func(t *testing.T) {
		tr := newTestRepo(t)

		tr.replica.ExpectQuery(regexp.QuoteMeta(selectAll + " WHERE stripe_dispute_id = $1")).
			WithArgs("dp_1").
			WillReturnRows(disputeRows(tr.replica, sampleEntity(1, "dp_1", 10)))

		result, err := tr.repo.GetDisputeByDisputeID(ctx, dispute.GetStripeDisputeByIDInput{
			StripeDisputeID: "dp_1",
			DisputeIDType:   dispute.IDTypeStripeDisputeID,
		})

		require.NoError(t, err)
		assert.Equal(t, "dp_1", result.StripeDisputeID)
	})

	t.Run("should match internal id for dd id type", func(t *testing.T) {
		tr := newTestRepo(t)

		tr.replica.ExpectQuery(regexp.QuoteMeta(selectAll + " WHERE id = $1")).
			WithArgs(int64(42)).
			WillReturnRows(disputeRows(tr.replica, sampleEntity(42, "dp_42", 10)))

		result, err := tr.repo.GetDisputeByDisputeID(ctx, dispute.GetStripeDisputeByIDInput{
			StripeDisputeID: "42",
			DisputeIDType:   dispute.IDTypeDDStripeDisputeID,
		})

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, int64(42), *result.ID)
	})

	t.Run("should return nil for non numeric internal id without querying", func(t *testing.T) {
		tr := newTestRepo(t)

		result, err := tr.repo.GetDisputeByDisputeID(ctx, dispute.GetStripeDisputeByIDInput{
			StripeDisputeID: "dp_1",
			DisputeIDType:   dispute.IDTypeDDStripeDisputeID,
		})

		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("should return nil when no row matches", func(t *testing.T) {
		tr := newTestRepo(t)

		tr.replica.ExpectQuery(regexp.QuoteMeta(selectAll + " WHERE stripe_dispute_id = $1")).
			WithArgs("dp_missing").
			WillReturnRows(disputeRows(tr.replica))

		result, err := tr.repo.GetDisputeByDisputeID(ctx, dispute.GetStripeDisputeByIDInput{StripeDisputeID: "dp_missing"})

		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("should wrap store error", func(t *testing.T) {
		tr := newTestRepo(t)

		tr.replica.ExpectQuery(regexp.QuoteMeta(selectAll)).
			WithArgs("dp_1").
			WillReturnError(assert.AnError)

		_, err := tr.repo.GetDisputeByDisputeID(ctx, dispute.GetStripeDisputeByIDInput{StripeDisputeID: "dp_1"})

		require.Error(t, err)
		assert.ErrorIs(t, err, assert.AnError)
		assert.Contains(t, err.Error(), "query dispute by id")
	})
}

func TestUpdateDisputeDetails(t *testing.T) {
	ctx := context.Background()
	updateSQL := "UPDATE stripe_dispute SET evidence_submitted_at = $1, updated_at = $2 WHERE stripe_dispute_id = $3 RETURNING " +
		strings.Join(stripeDisputeColumns, ", ")

	t.Run("should update only evidence timestamps on primary", func(t *testing.T) {
		tr := newTestRepo(t)
		submittedAt := time.Date(2024, 2, 12, 10, 0, 0, 0, time.UTC)
		updatedAt := submittedAt.Add(time.Second)

		entity := sampleEntity(1, "dp_1", 10)
		entity.EvidenceSubmittedAt = &submittedAt
		entity.UpdatedAt = &updatedAt

		tr.primary.ExpectQuery(regexp.QuoteMeta(updateSQL)).
			WithArgs(submittedAt, updatedAt, "dp_1").
			WillReturnRows(disputeRows(tr.primary, entity))

		result, err := tr.repo.UpdateDisputeDetails(ctx,
			dispute.UpdateStripeDisputeSetInput{EvidenceSubmittedAt: submittedAt, UpdatedAt: updatedAt},
			dispute.UpdateStripeDisputeWhereInput{ID: "dp_1"},
		)

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, submittedAt, *result.EvidenceSubmittedAt)
		assert.Equal(t, updatedAt, *result.UpdatedAt)
		assert.Equal(t, entity.Status, result.Status)
		assert.Equal(t, entity.Amount, result.Amount)
	})

	t.Run("should return nil when nothing matched", func(t *testing.T) {
		tr := newTestRepo(t)
		now := time.Date(2024, 2, 12, 10, 0, 0, 0, time.UTC)

		tr.primary.ExpectQuery(regexp.QuoteMeta(updateSQL)).
			WithArgs(now, now, "dp_missing").
			WillReturnRows(disputeRows(tr.primary))

		result, err := tr.repo.UpdateDisputeDetails(ctx,
			dispute.UpdateStripeDisputeSetInput{EvidenceSubmittedAt: now, UpdatedAt: now},
			dispute.UpdateStripeDisputeWhereInput{ID: "dp_missing"},
		)

		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("should wrap store error", func(t *testing.T) {
		tr := newTestRepo(t)

		tr.primary.ExpectQuery(regexp.QuoteMeta("UPDATE stripe_dispute")).
			WithArgs(time.Time{}, time.Time{}, "dp_1").
			WillReturnError(assert.AnError)

		_, err := tr.repo.UpdateDisputeDetails(ctx, dispute.UpdateStripeDisputeSetInput{}, dispute.UpdateStripeDisputeWhereInput{ID: "dp_1"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "update dispute details")
	})
}

func TestListDisputesByPayerID(t *testing.T) {
	ctx := context.Background()

	t.Run("should select every card of the payer on replica", func(t *testing.T) {
		tr := newTestRepo(t)

		tr.replica.ExpectQuery(regexp.QuoteMeta(selectAll+" WHERE stripe_card_id IN ($1,$2)")).
			WithArgs(int64(10), int64(11)).
			WillReturnRows(disputeRows(tr.replica, sampleEntity(1, "dp_1", 10), sampleEntity(2, "dp_2", 11)))

		result, err := tr.repo.ListDisputesByPayerID(ctx, dispute.GetAllStripeDisputesByPayerIDInput{StripeCardIDs: []int64{10, 11}})

		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"dp_1", "dp_2"}, []string{result[0].StripeDisputeID, result[1].StripeDisputeID})
	})

	t.Run("should return empty list without querying for no cards", func(t *testing.T) {
		tr := newTestRepo(t)

		result, err := tr.repo.ListDisputesByPayerID(ctx, dispute.GetAllStripeDisputesByPayerIDInput{})

		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})

	t.Run("should return empty list when nothing matches", func(t *testing.T) {
		tr := newTestRepo(t)

		tr.replica.ExpectQuery(regexp.QuoteMeta(selectAll + " WHERE stripe_card_id IN ($1)")).
			WithArgs(int64(99)).
			WillReturnRows(disputeRows(tr.replica))

		result, err := tr.repo.ListDisputesByPayerID(ctx, dispute.GetAllStripeDisputesByPayerIDInput{StripeCardIDs: []int64{99}})

		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})
}

func TestListDisputesByPaymentMethodID(t *testing.T) {
	ctx := context.Background()
	tr := newTestRepo(t)

	tr.replica.ExpectQuery(regexp.QuoteMeta(selectAll + " WHERE stripe_card_id = $1")).
		WithArgs(int64(10)).
		WillReturnRows(disputeRows(tr.replica, sampleEntity(1, "dp_1", 10), sampleEntity(3, "dp_3", 10)))

	result, err := tr.repo.ListDisputesByPaymentMethodID(ctx, dispute.GetAllStripeDisputesByPaymentMethodIDInput{StripeCardID: 10})

	require.NoError(t, err)
	require.Len(t, result, 2)
	for _, d := range result {
		assert.Equal(t, int64(10), d.StripeCardID)
	}
}

func TestGetDisputesByDdConsumerID(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("should filter cards reasons and strictly later disputes", func(t *testing.T) {
		tr := newTestRepo(t)

		tr.replica.ExpectQuery(regexp.QuoteMeta(selectAll+
			" WHERE stripe_card_id IN ($1,$2) AND reason IN ($3,$4) AND disputed_at > $5")).
			WithArgs(int64(10), int64(11), "fraudulent", "general", start).
			WillReturnRows(disputeRows(tr.replica, sampleEntity(1, "dp_1", 10)))

		result, err := tr.repo.GetDisputesByDdConsumerID(ctx, dispute.GetCumulativeAmountInput{
			CardIDs:   []int64{10, 11},
			Reasons:   []string{"fraudulent", "general"},
			StartTime: start,
		})

		require.NoError(t, err)
		assert.Len(t, result, 1)
	})

	t.Run("should short circuit empty sets", func(t *testing.T) {
		tr := newTestRepo(t)

		noCards, err := tr.repo.GetDisputesByDdConsumerID(ctx, dispute.GetCumulativeAmountInput{Reasons: []string{"fraudulent"}, StartTime: start})
		require.NoError(t, err)
		assert.Empty(t, noCards)

		noReasons, err := tr.repo.GetDisputesByDdConsumerID(ctx, dispute.GetCumulativeAmountInput{CardIDs: []int64{10}, StartTime: start})
		require.NoError(t, err)
		assert.Empty(t, noReasons)
	})
}

func TestGetDisputesByDdStripeCardID(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("should filter one card by reasons and start time", func(t *testing.T) {
		tr := newTestRepo(t)

		tr.replica.ExpectQuery(regexp.QuoteMeta(selectAll+
			" WHERE stripe_card_id = $1 AND reason IN ($2) AND disputed_at > $3")).
			WithArgs(int64(10), "fraudulent", start).
			WillReturnRows(disputeRows(tr.replica, sampleEntity(1, "dp_1", 10), sampleEntity(2, "dp_2", 10)))

		result, err := tr.repo.GetDisputesByDdStripeCardID(ctx, dispute.GetCumulativeCountInput{
			StripeCardID: 10,
			Reasons:      []string{"fraudulent"},
			StartTime:    start,
		})

		require.NoError(t, err)
		assert.Len(t, result, 2)
	})

	t.Run("should short circuit empty reasons", func(t *testing.T) {
		tr := newTestRepo(t)

		result, err := tr.repo.GetDisputesByDdStripeCardID(ctx, dispute.GetCumulativeCountInput{StripeCardID: 10, StartTime: start})

		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})

	t.Run("should wrap store error", func(t *testing.T) {
		tr := newTestRepo(t)

		tr.replica.ExpectQuery(regexp.QuoteMeta(selectAll)).
			WithArgs(int64(10), "fraudulent", start).
			WillReturnError(assert.AnError)

		_, err := tr.repo.GetDisputesByDdStripeCardID(ctx, dispute.GetCumulativeCountInput{
			StripeCardID: 10,
			Reasons:      []string{"fraudulent"},
			StartTime:    start,
		})

		assert.ErrorIs(t, err, assert.AnError)
	})
}
