// Package form keeps the state of an HTML form: typed values declared by a
// Schema, the ordered validators of each registered field and the errors they
// produce.
//
// A form is usually built per request:
//
//	f := form.New(form.Schema{"username": form.KindText, "password": form.KindText})
//	f.RegisterMany(
//		form.Registration{Field: "username", Options: form.RegisterOptions{Required: true}},
//		form.Registration{Field: "password", Options: form.RegisterOptions{Required: true}},
//	)
//
//	if err := f.Handle(r); err != nil { ... }
//
//	submitted, err := f.OnSubmit(func(ctx context.Context, values form.Values) error {
//		return client.Login(ctx, values.Text("username"), values.Text("password"))
//	})(ctx)
//
// Errors returned by a backend can be attached to a field with SetError; they
// are dropped the next time the field is validated.
package form
