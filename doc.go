// Package lingora provides a Go client SDK for the Lingora translation
// API: text, batch, HTML, email, and subtitle translation, language
// detection, account information, and asynchronous i18n file translation
// jobs.
//
// Every operation runs through a shared request pipeline that bounds the
// number of in-flight requests, retries connection-level failures with
// exponential backoff, and classifies API failures into typed errors.
//
// Basic usage:
//
//	client, err := lingora.New("your-api-key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := client.Translate(ctx, "Hello, world", "fr")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(res["translation"])
//
// Errors can be inspected by kind or matched with errors.Is:
//
//	if errors.Is(err, lingora.ErrRateLimited) {
//	    // back off and try again later
//	}
package lingora
