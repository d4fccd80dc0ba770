package httpinterface_test

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/stretchr/testify/require"
	"github.com/thanhpk/randstr"
	"github.com/vivcrypto/viv-smart-contracts/internal/core/application"
	"github.com/vivcrypto/viv-smart-contracts/internal/core/domain"
	"github.com/vivcrypto/viv-smart-contracts/internal/infrastructure/ledger"
	"github.com/vivcrypto/viv-smart-contracts/internal/infrastructure/storage/db/inmemory"
	httpinterface "github.com/vivcrypto/viv-smart-contracts/internal/interfaces/http"
	"github.com/vivcrypto/viv-smart-contracts/pkg/signutil"
)

type testParty struct {
	key  *btcec.PrivateKey
	addr signutil.Address
}

func newTestParty(t *testing.T) testParty {
	t.Helper()
	key, err := btcec.NewPrivateKey()
	require.NoError(t, err)
	return testParty{key, signutil.AddressFromPubKey(key.PubKey())}
}

func (p testParty) signHex(t *testing.T, hash []byte) string {
	t.Helper()
	sig, err := signutil.Sign(p.key, hash)
	require.NoError(t, err)
	return hex.EncodeToString(sig)
}

type testServer struct {
	router http.Handler
	ledger *ledger.Ledger

	buyer, seller, guarantor, platform testParty
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	srv := &testServer{
		ledger:    ledger.NewLedger(),
		buyer:     newTestParty(t),
		seller:    newTestParty(t),
		guarantor: newTestParty(t),
		platform:  newTestParty(t),
	}
	svc := application.NewSettlementService(
		inmemory.NewRepoManager(), srv.ledger, signutil.NewECDSARecoverer(),
	)
	srv.router = httpinterface.NewHandler(svc).Router()
	return srv
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) fundBuyer(amount uint64) error {
	return s.ledger.Fund(domain.NativeToken(), s.buyer.addr, amount)
}

func (s *testServer) purchaseBody(tid string, amount uint64) map[string]interface{} {
	return map[string]interface{}{
		"tid":            tid,
		"seller":         s.seller.addr.String(),
		"buyer":          s.buyer.addr.String(),
		"guarantor":      s.guarantor.addr.String(),
		"platform":       s.platform.addr.String(),
		"fee_rate_bps":   500,
		"amount":         amount,
		"attached_value": amount,
	}
}

func (s *testServer) createTrade(t *testing.T, tid string, amount uint64) {
	t.Helper()
	rec := s.do(t, "POST", "/v1/trades", s.purchaseBody(tid, amount))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(t)
	rec := srv.do(t, "GET", "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateAndGetTrade(t *testing.T) {
	srv := newTestServer(t)
	tid := randstr.Hex(18)
	amount := uint64(100000)
	require.NoError(t, srv.fundBuyer(amount))

	srv.createTrade(t, tid, amount)

	rec := srv.do(t, "GET", "/v1/trades/"+tid, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var trade map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &trade))
	require.Equal(t, tid, trade["tid"])
	require.Equal(t, float64(amount), trade["remaining_amount"])
	require.Equal(t, false, trade["closed"])

	rec = srv.do(t, "GET", "/v1/trades", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var trades []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &trades))
	require.Len(t, trades, 1)
}

func TestFailingCreateTrade(t *testing.T) {
	srv := newTestServer(t)
	tid := randstr.Hex(18)
	amount := uint64(100000)
	require.NoError(t, srv.fundBuyer(10 * amount))

	t.Run("malformed_body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/v1/trades", bytes.NewBufferString("{"))
		rec := httptest.NewRecorder()
		srv.router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid_address", func(t *testing.T) {
		body := srv.purchaseBody(tid, amount)
		body["seller"] = "nothex"
		rec := srv.do(t, "POST", "/v1/trades", body)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("payment_mismatch", func(t *testing.T) {
		body := srv.purchaseBody(tid, amount)
		body["attached_value"] = amount - 1
		rec := srv.do(t, "POST", "/v1/trades", body)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("duplicate_tid", func(t *testing.T) {
		srv.createTrade(t, tid, amount)
		rec := srv.do(t, "POST", "/v1/trades", srv.purchaseBody(tid, amount))
		require.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestCreateWithdrawal(t *testing.T) {
	srv := newTestServer(t)
	tid := randstr.Hex(18)
	amount := uint64(100000)
	require.NoError(t, srv.fundBuyer(amount))
	srv.createTrade(t, tid, amount)

	rawTid, err := hex.DecodeString(tid)
	require.NoError(t, err)
	digest := signutil.ReleaseDigest(rawTid)

	withdrawBody := func() map[string]interface{} {
		return map[string]interface{}{
			"caller": srv.seller.addr.String(),
			"sig1":   srv.buyer.signHex(t, digest),
			"sig2":   srv.seller.signHex(t, digest),
			"amount": amount,
		}
	}
	path := fmt.Sprintf("/v1/trades/%s/withdrawals", tid)

	t.Run("unknown_trade", func(t *testing.T) {
		rec := srv.do(t, "POST", fmt.Sprintf("/v1/trades/%s/withdrawals", randstr.Hex(18)), withdrawBody())
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("quorum_not_met", func(t *testing.T) {
		body := withdrawBody()
		body["sig2"] = srv.buyer.signHex(t, digest)
		rec := srv.do(t, "POST", path, body)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("malformed_signature", func(t *testing.T) {
		body := withdrawBody()
		body["sig1"] = "deadbeef"
		rec := srv.do(t, "POST", path, body)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		rec := srv.do(t, "POST", path, withdrawBody())
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var payout map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payout))
		require.Equal(t, float64(5000), payout["fee_amount"])
		require.Equal(t, float64(95000), payout["seller_amount"])

		rec = srv.do(t, "GET", path, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var withdrawals []map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &withdrawals))
		require.Len(t, withdrawals, 1)
	})

	t.Run("trade_exhausted", func(t *testing.T) {
		rec := srv.do(t, "POST", path, withdrawBody())
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}
