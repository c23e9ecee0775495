package commands_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/staff"
)

func validRegisterDriverCommand(t *testing.T) commands.RegisterDriverCommand {
	t.Helper()
	cmd, err := commands.NewRegisterDriverCommand(
		"Luca", "Visser", "luca@pizzeria.example",
		time.Date(1995, time.November, 2, 0, 0, 0, 0, time.UTC),
		"1012AB",
	)
	require.NoError(t, err)
	return cmd
}

func TestRegisterDriverCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := validRegisterDriverCommand(t)

	driverRepo := new(MockDriverRepository)
	uow := new(MockDriverUoW)
	factory := new(MockDriverUoWFactory)

	var added *staff.Driver
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", mock.Anything).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Add", mock.Anything, mock.AnythingOfType("*staff.Driver")).
			Run(func(args mock.Arguments) {
				added = args.Get(1).(*staff.Driver)
			}).Return(nil).Once(),
		uow.On("Commit", mock.Anything).Return(nil).Once(),
		uow.On("Rollback", mock.Anything).Return(nil).Once(),
	)

	h := commands.NewRegisterDriverCommandHandler(factory)
	id, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.NotNil(t, added)
	assert.True(t, id.IsEqual(added.ID()))
	assert.Equal(t, "Luca Visser", added.Person().FullName())
	assert.Equal(t, "1012AB", added.AssignedPostalCode())
	assert.True(t, added.IsAvailable())
	assert.Nil(t, added.LastDeliveryTime())

	driverRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRegisterDriverCommandHandler_Handle_AddErrorRollsBack(t *testing.T) {
	ctx := t.Context()
	cmd := validRegisterDriverCommand(t)

	driverRepo := new(MockDriverRepository)
	uow := new(MockDriverUoW)
	factory := new(MockDriverUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", mock.Anything).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Add", mock.Anything, mock.AnythingOfType("*staff.Driver")).
			Return(errors.New("insert failed")).Once(),
		uow.On("Rollback", mock.Anything).Return(nil).Once(),
	)

	h := commands.NewRegisterDriverCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestNewRegisterDriverCommand_Validation(t *testing.T) {
	birthDate := time.Date(1995, time.November, 2, 0, 0, 0, 0, time.UTC)

	_, err := commands.NewRegisterDriverCommand("", "Visser", "luca@pizzeria.example", birthDate, "1012AB")
	assert.ErrorIs(t, err, commands.ErrDriverFirstNameIsRequired)

	_, err = commands.NewRegisterDriverCommand("Luca", "Visser", "luca@pizzeria.example", time.Time{}, "1012AB")
	assert.ErrorIs(t, err, commands.ErrDriverBirthDateIsRequired)

	_, err = commands.NewRegisterDriverCommand("Luca", "Visser", "luca@pizzeria.example", birthDate, "")
	assert.ErrorIs(t, err, commands.ErrDriverPostalCodeIsRequired)
}

func TestRegisterDriverCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockDriverUoWFactory)
	h := commands.NewRegisterDriverCommandHandler(factory)

	cmd := commands.RegisterDriverCommand{} // not constructed properly
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
