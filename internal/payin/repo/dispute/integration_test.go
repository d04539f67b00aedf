//go:build integration

package dispute_repo_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"PaymentService/internal/payin/domain/dispute"
	dispute_repo "PaymentService/internal/payin/repo/dispute"
	"PaymentService/internal/testinfra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedDispute(t *testing.T, pg *testinfra.PostgresContainer, stripeID string, cardID int64, reason string, disputedAt time.Time) int64 {
	t.Helper()

	var id int64
	err := pg.Cluster.Primary().QueryRow(context.Background(), `
		INSERT INTO stripe_dispute (
			stripe_dispute_id, disputed_at, amount, fee, net, currency, charged_at,
			reason, status, evidence_due_by, stripe_card_id, stripe_charge_id
		) VALUES ($1, $2, 1000, 1500, -2500, 'usd', $2, $3, 'needs_response', $2, $4, 1)
		RETURNING id`,
		stripeID, disputedAt, reason, cardID,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func TestPgDisputeRepo_Integration(t *testing.T) {
	ctx := context.Background()

	pg, err := testinfra.NewPostgres(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { pg.Cleanup(ctx) })
	require.NoError(t, pg.Truncate(ctx))

	repo := dispute_repo.NewPgDisputeRepo(pg.Cluster)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	internalID := seedDispute(t, pg, "dp_1", 10, "fraudulent", start.Add(time.Hour))
	seedDispute(t, pg, "dp_2", 10, "duplicate", start.Add(2*time.Hour))
	seedDispute(t, pg, "dp_3", 11, "fraudulent", start.Add(-time.Hour))
	seedDispute(t, pg, "dp_4", 11, "fraudulent", start)

	t.Run("should look disputes up by either id type", func(t *testing.T) {
		byStripeID, err := repo.GetDisputeByDisputeID(ctx, dispute.GetStripeDisputeByIDInput{StripeDisputeID: "dp_1"})
		require.NoError(t, err)
		require.NotNil(t, byStripeID)

		byInternalID, err := repo.GetDisputeByDisputeID(ctx, dispute.GetStripeDisputeByIDInput{
			StripeDisputeID: strconv.FormatInt(internalID, 10),
			DisputeIDType:   dispute.IDTypeDDStripeDisputeID,
		})
		require.NoError(t, err)
		assert.Equal(t, byStripeID, byInternalID)
	})

	t.Run("should filter cumulative queries by reason and start time", func(t *testing.T) {
		byCards, err := repo.GetDisputesByDdConsumerID(ctx, dispute.GetCumulativeAmountInput{
			CardIDs:   []int64{10, 11},
			Reasons:   []string{"fraudulent"},
			StartTime: start,
		})
		require.NoError(t, err)
		// dp_4 sits exactly on start_time and is excluded
		require.Len(t, byCards, 1)
		assert.Equal(t, "dp_1", byCards[0].StripeDisputeID)

		byCard, err := repo.GetDisputesByDdStripeCardID(ctx, dispute.GetCumulativeCountInput{
			StripeCardID: 10,
			Reasons:      []string{"fraudulent", "duplicate"},
			StartTime:    start,
		})
		require.NoError(t, err)
		assert.Len(t, byCard, 2)
	})

	t.Run("should update evidence timestamps on the primary", func(t *testing.T) {
		now := time.Now().UTC().Truncate(time.Microsecond)

		before, err := repo.GetDisputeByDisputeID(ctx, dispute.GetStripeDisputeByIDInput{StripeDisputeID: "dp_2"})
		require.NoError(t, err)
		require.NotNil(t, before)

		updated, err := repo.UpdateDisputeDetails(ctx,
			dispute.UpdateStripeDisputeSetInput{EvidenceSubmittedAt: now, UpdatedAt: now.Add(time.Second)},
			dispute.UpdateStripeDisputeWhereInput{ID: "dp_2"},
		)
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.True(t, now.Equal(*updated.EvidenceSubmittedAt))
		assert.True(t, now.Add(time.Second).Equal(*updated.UpdatedAt))

		// every other column is untouched
		expected := *before
		expected.EvidenceSubmittedAt = updated.EvidenceSubmittedAt
		expected.UpdatedAt = updated.UpdatedAt
		assert.Equal(t, expected, *updated)

		missing, err := repo.UpdateDisputeDetails(ctx,
			dispute.UpdateStripeDisputeSetInput{EvidenceSubmittedAt: now, UpdatedAt: now},
			dispute.UpdateStripeDisputeWhereInput{ID: "dp_missing"},
		)
		require.NoError(t, err)
		assert.Nil(t, missing)
	})
}
