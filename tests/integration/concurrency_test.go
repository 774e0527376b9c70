package integration

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAllocations hammers the allocation endpoint from many
// goroutines and verifies the per-session serialization: the allocated
// total can never exceed the remaining balance, whatever the interleaving.
func TestConcurrentAllocations(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	doc := app.doSession(t, "POST", "/api/v1/checkout/sessions", map[string]string{"merchant": "any"}, 201)
	base := "/api/v1/checkout/sessions/" + doc.ID

	app.doSession(t, "POST", base+"/cart/toggle", map[string]string{"denomination_id": "m500"}, 200)
	app.doSession(t, "POST", base+"/cart/quantity", map[string]any{"denomination_id": "m500", "value": 10}, 200)
	app.doSession(t, "POST", base+"/continue", nil, 200)
	app.doSession(t, "POST", base+"/pay", nil, 200)
	require.Equal(t, 1, app.sched.Fire())

	app.doSession(t, "POST", base+"/send-to-someone", nil, 200)
	app.doSession(t, "POST", base+"/recipients", map[string]string{"group": "community"}, 200)

	recipients := []string{"u-amaka", "u-tunde", "u-ngozi"}
	amounts := []int64{900, 2500, 4800, 5000, 100}

	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			body := map[string]any{
				"recipient_id": recipients[i%len(recipients)],
				"amount":       amounts[i%len(amounts)],
			}
			resp, _ := app.do(t, "POST", base+"/allocations", body)
			assert.Equal(t, 200, resp.StatusCode)
		}(i)
	}
	wg.Wait()

	doc = app.doSession(t, "GET", base, nil, 200)
	assert.Equal(t, int64(5000), doc.RemainingMobi)
	assert.LessOrEqual(t, doc.AllocatedTotal, doc.RemainingMobi)

	// Whatever survived the race still commits cleanly.
	if doc.AllocatedTotal > 0 {
		app.doSession(t, "POST", base+"/send", nil, 200)
		require.Equal(t, 1, app.sched.Fire())
		doc = app.doSession(t, "GET", base, nil, 200)
		assert.Equal(t, "sent", doc.SendState)

		var total int64
		for _, tr := range doc.Transfers {
			total += tr.Amount
		}
		assert.Equal(t, int64(5000)-doc.RemainingMobi, total)
	}
}
