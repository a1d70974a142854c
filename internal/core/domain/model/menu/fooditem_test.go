package menu_test

import (
	"testing"

	"kebabhouse/internal/core/domain/model/kernel"
	"kebabhouse/internal/core/domain/model/menu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose(t *testing.T) {
	kebab, err := menu.BaseDishByID(menu.DishPaninoDonerKebab)
	require.NoError(t, err)

	t.Run("should compose base dish with no add-ons", func(t *testing.T) {
		item, err := menu.Compose(kebab)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, "5.50", item.Cost().String())
		assert.Equal(t, 5, item.DurationMinutes())
		assert.Equal(t, "Panino Doner Kebab", item.Description())
	})

	t.Run("should sum cost and duration over base plus add-ons", func(t *testing.T) {
		item, err := menu.Compose(kebab, menu.AddOnCipolla, menu.AddOnPatatine)

		require.NoError(t, err)
		assert.Equal(t, "8.00", item.Cost().String())
		assert.Equal(t, 9, item.DurationMinutes())
		assert.Equal(t, "Panino Doner Kebab + Cipolla + Patatine", item.Description())
	})

	t.Run("should allow the same add-on applied twice", func(t *testing.T) {
		item, err := menu.Compose(kebab, menu.AddOnCipolla, menu.AddOnCipolla)

		require.NoError(t, err)
		assert.Equal(t, "6.50", item.Cost().String())
		assert.Equal(t, 7, item.DurationMinutes())
	})

	t.Run("should fail with UnknownAddOnError for a kind outside the catalog", func(t *testing.T) {
		_, err := menu.Compose(kebab, menu.AddOnKind("ananas"))

		require.Error(t, err)
		require.ErrorIs(t, err, menu.ErrUnknownAddOn)
		assert.Contains(t, err.Error(), "ananas")
	})

	t.Run("should fail with UnknownAddOnError regardless of base dish", func(t *testing.T) {
		for _, dish := range menu.AllBaseDishes() {
			_, err := menu.Compose(dish, menu.AddOnKind("ananas"))
			require.ErrorIs(t, err, menu.ErrUnknownAddOn)
		}
	})

	t.Run("should fail for a zero value base dish", func(t *testing.T) {
		var dish menu.BaseDish

		_, err := menu.Compose(dish, menu.AddOnCipolla)

		require.Error(t, err)
		assert.Equal(t, menu.ErrDishIsNotConstructed, err)
	})
}

func TestCompose_Commutativity(t *testing.T) {
	kebab, _ := menu.BaseDishByID(menu.DishPaninoDonerKebab)

	// Every ordering of the same multiset of add-ons.
	orderings := [][]menu.AddOnKind{
		{menu.AddOnCipolla, menu.AddOnSalsaYogurt, menu.AddOnPatatine},
		{menu.AddOnCipolla, menu.AddOnPatatine, menu.AddOnSalsaYogurt},
		{menu.AddOnSalsaYogurt, menu.AddOnCipolla, menu.AddOnPatatine},
		{menu.AddOnSalsaYogurt, menu.AddOnPatatine, menu.AddOnCipolla},
		{menu.AddOnPatatine, menu.AddOnCipolla, menu.AddOnSalsaYogurt},
		{menu.AddOnPatatine, menu.AddOnSalsaYogurt, menu.AddOnCipolla},
	}

	reference, err := menu.Compose(kebab, orderings[0]...)
	require.NoError(t, err)

	for _, ordering := range orderings {
		item, err := menu.Compose(kebab, ordering...)

		require.NoError(t, err)
		assert.True(t, item.Cost().IsEqual(reference.Cost()),
			"cost must not depend on add-on order: %v", ordering)
		assert.Equal(t, reference.DurationMinutes(), item.DurationMinutes(),
			"duration must not depend on add-on order: %v", ordering)
	}
}

func TestStandaloneAddOn(t *testing.T) {
	t.Run("should report only the add-on's own deltas", func(t *testing.T) {
		item, err := menu.StandaloneAddOn(menu.AddOnPatatine)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, "2.00", item.Cost().String())
		assert.Equal(t, 3, item.DurationMinutes())
		assert.Equal(t, "Patatine", item.Description())
	})

	t.Run("should fail for an unknown kind", func(t *testing.T) {
		_, err := menu.StandaloneAddOn(menu.AddOnKind("maionese"))

		require.ErrorIs(t, err, menu.ErrUnknownAddOn)
	})
}

func TestFoodItem_Validate(t *testing.T) {
	t.Run("should reject a zero value item", func(t *testing.T) {
		var item menu.FoodItem

		err := item.Validate()

		require.Error(t, err)
		assert.Equal(t, menu.ErrFoodItemIsNotConstructed, err)
	})
}

func TestFoodItem_AddOns(t *testing.T) {
	t.Run("should return a copy that does not alias internal state", func(t *testing.T) {
		kebab, _ := menu.BaseDishByID(menu.DishPaninoDonerKebab)
		item, _ := menu.Compose(kebab, menu.AddOnCipolla, menu.AddOnPatatine)

		addOns := item.AddOns()
		addOns[0] = menu.AddOn{}

		assert.Equal(t, "Cipolla", item.AddOns()[0].Name())
	})
}

func TestAddOnCatalog(t *testing.T) {
	t.Run("should list every catalog add-on with non-negative deltas", func(t *testing.T) {
		addOns := menu.AllAddOns()

		require.Len(t, addOns, 4)
		for _, addOn := range addOns {
			assert.NotEmpty(t, addOn.Name())
			assert.False(t, addOn.CostDelta().Decimal().IsNegative())
			assert.GreaterOrEqual(t, addOn.DurationMinutes(), 0)
		}
	})

	t.Run("should resolve a known kind", func(t *testing.T) {
		addOn, err := menu.AddOnByKind(menu.AddOnCipolla)

		require.NoError(t, err)
		assert.Equal(t, "Cipolla", addOn.Name())
		assert.Equal(t, "0.50", addOn.CostDelta().String())
		assert.Equal(t, 1, addOn.DurationMinutes())
	})
}

func TestBaseDishMenu(t *testing.T) {
	t.Run("should resolve a known dish", func(t *testing.T) {
		dish, err := menu.BaseDishByID(menu.DishPaninoDonerKebab)

		require.NoError(t, err)
		assert.Equal(t, "Panino Doner Kebab", dish.Name())
		assert.Equal(t, "5.50", dish.Cost().String())
		assert.Equal(t, 5, dish.DurationMinutes())
	})

	t.Run("should fail for a dish outside the menu", func(t *testing.T) {
		_, err := menu.BaseDishByID(menu.DishID("pizza-margherita"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "pizza-margherita")
	})

	t.Run("should allow a custom daily special", func(t *testing.T) {
		cost, _ := kernel.MoneyFromString("6.00")
		dish, err := menu.NewBaseDish(menu.DishID("special"), "Kebab del Giorno", cost, 6)

		require.NoError(t, err)
		require.NoError(t, dish.Validate())

		item, err := menu.Compose(dish, menu.AddOnSalsaYogurt)
		require.NoError(t, err)
		assert.Equal(t, "7.00", item.Cost().String())
	})

	t.Run("should require a dish name", func(t *testing.T) {
		_, err := menu.NewBaseDish(menu.DishID("x"), "", kernel.ZeroMoney(), 1)

		require.Error(t, err)
		assert.Equal(t, menu.ErrDishNameIsRequired, err)
	})
}
