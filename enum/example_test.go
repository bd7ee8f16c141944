package enum_test

import (
	"errors"
	"fmt"

	"github.com/MrEthical07/goRoles/enum"
)

func ExampleEnumeration_FromName() {
	colors := enum.MustNew("Color", []enum.Member[int]{
		enum.M("RED", 1),
		enum.M("GREEN", 2),
	})

	v, _ := colors.FromName("GREEN")
	fmt.Println(v)

	_, err := colors.FromName("PURPLE")
	fmt.Println(err)
	fmt.Println(errors.Is(err, enum.ErrNoSuchMember))
	// Output:
	// 2
	// Color has no enumerated value named PURPLE
	// true
}

func ExampleWithFlavor() {
	perms := enum.MustNew("Perm", []enum.Member[string]{
		enum.M("FLOWS_VIEW", "flows_view"),
	}, enum.WithFlavor(enum.SelfNaming))

	name, _ := perms.Get("FLOWS_VIEW")
	value, _ := perms.GetValue("FLOWS_VIEW")
	fmt.Println(name, value)
	// Output: FLOWS_VIEW flows_view
}
