package argvalidation_test

import (
	"errors"
	"fmt"

	v "github.com/Gobd/argvalidation"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type Account struct {
	Owner   string `json:"owner"`
	Balance int    `json:"balance"`
}

func Transfer(from, to *Account, amount int, memo string) error {
	if err := v.ValidateArgumentNotNil(v.Arg("from", from)); err != nil {
		return err
	}
	if err := v.ValidateArgumentNotNil(v.Arg("to", to)); err != nil {
		return err
	}
	if err := v.ValidateArgument(v.Arg("amount", amount), func(a int) bool { return a > 0 }, "must be positive, got %d", amount); err != nil {
		return err
	}
	return v.ValidateArgumentNotNilOrWhitespace(v.Arg("memo", memo))
}

func ExampleValidateArgument() {
	err := Transfer(&Account{}, &Account{}, -5, "rent")
	fmt.Println(err)
	// Output: amount: must be positive, got -5
}

func ExampleValidateArgumentNotNil() {
	err := Transfer(&Account{}, nil, 5, "rent")

	var argErr *v.ArgumentError
	if errors.As(err, &argErr) {
		fmt.Println(argErr.ParamName, errors.Is(err, v.ErrArgumentMissing))
	}
	// Output: to true
}

func ExampleValidateArgumentNotNilOrWhitespace() {
	err := Transfer(&Account{}, &Account{}, 5, "   ")
	fmt.Println(err)
	// Output: memo: cannot be blank
}

func ExampleField() {
	acct := Account{}
	err := v.ValidateArgumentNotNilOrEmpty(v.Field(&acct, &acct.Owner))
	fmt.Println(err)
	// Output: owner: cannot be blank
}

func ExampleValidateArgumentRules() {
	acct := Account{Balance: -10}
	err := v.ValidateArgumentRules(v.Field(&acct, &acct.Balance), validation.Min(0).Error("cannot be overdrawn"))
	fmt.Println(err)
	// Output: balance: cannot be overdrawn
}
