package workflow

import sdkactivity "go.temporal.io/sdk/activity"

func activityOptions(name string) sdkactivity.RegisterOptions {
	return sdkactivity.RegisterOptions{Name: name}
}
