package union

// Fixed-arity layout helpers for statically known candidate sets. Slots
// a caller does not need are filled with byte, which contributes
// alignment 1 and size 1 and therefore never changes the result.
//
// Sets larger than ten candidates use For.

// Of2 returns the layout for two candidate types.
func Of2[T1, T2 any]() Layout {
	return Join(Of[T1](), Of[T2]())
}

// Of3 returns the layout for three candidate types.
func Of3[T1, T2, T3 any]() Layout {
	return Join(Of2[T1, T2](), Of[T3]())
}

// Of4 returns the layout for four candidate types.
func Of4[T1, T2, T3, T4 any]() Layout {
	return Join(Of3[T1, T2, T3](), Of[T4]())
}

// Of5 returns the layout for five candidate types.
func Of5[T1, T2, T3, T4, T5 any]() Layout {
	return Join(Of4[T1, T2, T3, T4](), Of[T5]())
}

// Of6 returns the layout for six candidate types.
func Of6[T1, T2, T3, T4, T5, T6 any]() Layout {
	return Join(Of5[T1, T2, T3, T4, T5](), Of[T6]())
}

// Of7 returns the layout for seven candidate types.
func Of7[T1, T2, T3, T4, T5, T6, T7 any]() Layout {
	return Join(Of6[T1, T2, T3, T4, T5, T6](), Of[T7]())
}

// Of8 returns the layout for eight candidate types.
func Of8[T1, T2, T3, T4, T5, T6, T7, T8 any]() Layout {
	return Join(Of7[T1, T2, T3, T4, T5, T6, T7](), Of[T8]())
}

// Of9 returns the layout for nine candidate types.
func Of9[T1, T2, T3, T4, T5, T6, T7, T8, T9 any]() Layout {
	return Join(Of8[T1, T2, T3, T4, T5, T6, T7, T8](), Of[T9]())
}

// Of10 returns the layout for ten candidate types.
func Of10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10 any]() Layout {
	return Join(Of9[T1, T2, T3, T4, T5, T6, T7, T8, T9](), Of[T10]())
}
