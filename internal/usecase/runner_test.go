package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"retention-scraper/internal/domain"
	"retention-scraper/internal/extractor"
	"retention-scraper/internal/parser"
	"retention-scraper/internal/usecase"
	mock_usecase "retention-scraper/internal/usecase/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func mustDate(t *testing.T, text string) time.Time {
	t.Helper()
	d, err := parser.ParseDate(text)
	assert.NoError(t, err)
	return d
}

func factoryFor(session usecase.BankSession) usecase.SessionFactory {
	return func(ctx context.Context) (usecase.BankSession, error) {
		return session, nil
	}
}

func testRunConfig(t *testing.T) usecase.RunConfig {
	rng, err := domain.NewDateRange(
		mustDate(t, "01/11/2025"),
		mustDate(t, "30/11/2025"),
	)
	assert.NoError(t, err)
	return usecase.RunConfig{
		Credentials:    *testCreds(),
		AccountLocator: testLocator,
		Range:          rng,
		Pattern:        extractor.RetentionPattern,
	}
}

func TestRunner_EndToEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	session := mock_usecase.NewMockBankSession(ctrl)

	expectLogin(session)
	expectPlumbing(session)
	session.EXPECT().ClickText(gomock.Any(), testLocator, gomock.Any()).Return(true, nil)
	session.EXPECT().ClickText(gomock.Any(), "Todos los movimientos", gomock.Any()).Return(true, nil)
	session.EXPECT().ClickText(gomock.Any(), "Egresos de dinero", gomock.Any()).Return(true, nil)
	session.EXPECT().MovementText(gomock.Any()).Return(
		"28/11/2025\nIng. Brutos S/ Cred\n-$10.035,36\n15/11/2025\nTransferencia\n-$500,00", nil)
	session.EXPECT().Close().Return(nil)

	runner := usecase.NewRunner(factoryFor(session), quietLogger(), usecase.Timeouts{})
	result, err := runner.Run(context.Background(), testRunConfig(t))

	assert.NoError(t, err)
	assert.Len(t, result.Transactions, 1)
	assert.Equal(t, "10035.36", result.Total.StringFixed(2))
}

func TestRunner_SessionClosedOnNavigationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	session := mock_usecase.NewMockBankSession(ctrl)

	session.EXPECT().Navigate(gomock.Any(), gomock.Any()).Return(nil)
	session.EXPECT().FillField(gomock.Any(), "input#DocumentNumber", "12345678", gomock.Any()).Return(true, nil)
	session.EXPECT().AdvanceFocus(gomock.Any()).Return(nil)
	session.EXPECT().FillField(gomock.Any(), "input#UserName", "someuser", gomock.Any()).Return(true, nil)
	session.EXPECT().FillField(gomock.Any(), "input#Password", "hunter2", gomock.Any()).Return(false, nil)
	session.EXPECT().Close().Return(nil)

	runner := usecase.NewRunner(factoryFor(session), quietLogger(), usecase.Timeouts{})
	result, err := runner.Run(context.Background(), testRunConfig(t))

	assert.ErrorIs(t, err, domain.ErrLoginFieldsNotFound)
	assert.Empty(t, result.Transactions)
	assert.True(t, result.Total.IsZero(), "a failed session still reports a zero total")
}

func TestRunner_SessionClosedEvenWhenCloseErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	session := mock_usecase.NewMockBankSession(ctrl)

	expectLogin(session)
	expectPlumbing(session)
	session.EXPECT().ClickText(gomock.Any(), testLocator, gomock.Any()).Return(true, nil)
	session.EXPECT().ClickText(gomock.Any(), "Todos los movimientos", gomock.Any()).Return(true, nil)
	session.EXPECT().ClickText(gomock.Any(), "Egresos de dinero", gomock.Any()).Return(true, nil)
	session.EXPECT().MovementText(gomock.Any()).Return("", nil)
	session.EXPECT().Close().Return(errors.New("browser already gone"))

	runner := usecase.NewRunner(factoryFor(session), quietLogger(), usecase.Timeouts{})
	result, err := runner.Run(context.Background(), testRunConfig(t))

	// A close failure is logged, not propagated.
	assert.NoError(t, err)
	assert.Empty(t, result.Transactions)
}

func TestRunner_FactoryFailure(t *testing.T) {
	boom := errors.New("chromium binary not found")
	factory := usecase.SessionFactory(func(ctx context.Context) (usecase.BankSession, error) {
		return nil, boom
	})

	runner := usecase.NewRunner(factory, quietLogger(), usecase.Timeouts{})
	result, err := runner.Run(context.Background(), testRunConfig(t))

	assert.ErrorIs(t, err, boom)
	assert.Empty(t, result.Transactions)
	assert.True(t, result.Total.IsZero())
}
